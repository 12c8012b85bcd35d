package notification_test

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Veraticus/weechat-notify-send/pkg/notification"
	"github.com/Veraticus/weechat-notify-send/pkg/testutil"
)

func TestManager_Send(t *testing.T) {
	mock := testutil.NewMockNotifier()
	m := notification.NewManager(mock, "exec", zerolog.Nop())

	if !m.Send(notification.Notification{Source: "#chan", Message: "hi"}) {
		t.Error("expected successful send to be reported")
	}

	sent := mock.GetNotifications()
	if len(sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sent))
	}
	if sent[0].Source != "#chan" || sent[0].Message != "hi" {
		t.Errorf("unexpected notification %+v", sent[0])
	}
}

func TestManager_SendSwallowsErrors(t *testing.T) {
	var logs bytes.Buffer
	mock := testutil.NewMockNotifier()
	mock.SetError(&exec.Error{Name: "notify-send", Err: exec.ErrNotFound})
	m := notification.NewManager(mock, "exec", zerolog.New(&logs))

	if m.Send(notification.Notification{Source: "#chan", Message: "hi"}) {
		t.Error("expected failed send to be reported")
	}
	if got := len(mock.GetAttempts()); got != 1 {
		t.Errorf("expected 1 attempt, got %d", got)
	}
	if got := len(mock.GetNotifications()); got != 0 {
		t.Errorf("expected no delivered notifications, got %d", got)
	}

	out := logs.String()
	if !strings.Contains(out, `*exec.Error: exec: \"notify-send\": executable file not found in $PATH`) {
		t.Errorf("expected error type and text in log, got %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, `"source":"#chan"`) {
		t.Errorf("expected structured error fields, got %s", out)
	}
}

func TestManager_SendKeepsGoingAfterFailure(t *testing.T) {
	mock := testutil.NewMockNotifier()
	m := notification.NewManager(mock, "exec", zerolog.Nop())

	mock.SetError(errors.New("exit status 1"))
	m.Send(notification.Notification{Source: "a"})

	mock.SetError(nil)
	if !m.Send(notification.Notification{Source: "b"}) {
		t.Error("expected send after a failure to succeed")
	}
	if got := len(mock.GetNotifications()); got != 1 {
		t.Errorf("expected 1 delivered notification, got %d", got)
	}
}

func TestManager_Close(t *testing.T) {
	mock := testutil.NewMockNotifier()
	if err := notification.NewManager(mock, "exec", zerolog.Nop()).Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mock.IsClosed() {
		t.Error("expected backend to be closed")
	}

	if err := notification.NewManager(notification.NewWriterNotifier(&bytes.Buffer{}), "stdout", zerolog.Nop()).Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
