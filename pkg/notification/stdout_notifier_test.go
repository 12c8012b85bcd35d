package notification

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdoutNotifier_Send(t *testing.T) {
	tests := []struct {
		name         string
		notification Notification
		wantContains string
	}{
		{
			name: "basic notification",
			notification: Notification{
				Source:    "#chan",
				Message:   "john: hello",
				Timeout:   5000,
				Transient: true,
				Urgency:   "normal",
			},
			wantContains: "[NOTIFICATION] #chan: john: hello (urgency: normal, timeout: 5000ms, transient: true)",
		},
		{
			name:         "unset timeout",
			notification: Notification{Source: "john", Message: "hi", Timeout: TimeoutUnset},
			wantContains: "timeout: default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n := NewWriterNotifier(&buf)

			if err := n.Send(tt.notification); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.wantContains) {
				t.Errorf("expected output to contain %q, got %q", tt.wantContains, buf.String())
			}
		})
	}
}
