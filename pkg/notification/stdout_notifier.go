package notification

import (
	"fmt"
	"io"
	"os"
)

// StdoutNotifier prints notifications instead of showing them (dry run)
type StdoutNotifier struct {
	w io.Writer
}

// NewStdoutNotifier creates a new stdout notifier
func NewStdoutNotifier() *StdoutNotifier {
	return NewWriterNotifier(os.Stdout)
}

// NewWriterNotifier creates a notifier printing to w.
func NewWriterNotifier(w io.Writer) *StdoutNotifier {
	return &StdoutNotifier{w: w}
}

// Send prints the notification
func (n *StdoutNotifier) Send(notification Notification) error {
	timeout := "default"
	if notification.HasTimeout() {
		timeout = fmt.Sprintf("%dms", notification.Timeout)
	}
	_, err := fmt.Fprintf(n.w, "[NOTIFICATION] %s: %s (urgency: %s, timeout: %s, transient: %t)\n",
		notification.Source,
		notification.Message,
		notification.Urgency,
		timeout,
		notification.Transient)
	return err
}
