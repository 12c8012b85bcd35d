package notification

import (
	"strconv"

	"github.com/Veraticus/weechat-notify-send/pkg/process"
	"github.com/Veraticus/weechat-notify-send/pkg/textutil"
)

// NotifySendProgram is the external command used by NotifySendNotifier.
const NotifySendProgram = "notify-send"

// NotifySendNotifier sends notifications by running notify-send.
type NotifySendNotifier struct {
	runner  process.Runner
	program string
}

// NewNotifySendNotifier creates a notifier running notify-send through runner.
func NewNotifySendNotifier(runner process.Runner) *NotifySendNotifier {
	return &NotifySendNotifier{
		runner:  runner,
		program: NotifySendProgram,
	}
}

// Ensure NotifySendNotifier implements Notifier
var _ Notifier = (*NotifySendNotifier)(nil)

// Send runs notify-send once. The error from the runner is returned as is.
func (n *NotifySendNotifier) Send(notification Notification) error {
	return n.runner.Run(n.program, NotifySendArgs(notification)...)
}

// NotifySendArgs returns the notify-send arguments for a notification,
// without the program name. Optional flags are left out when unset and the
// positional arguments follow "--" so they are never taken for flags.
func NotifySendArgs(n Notification) []string {
	args := []string{"--app-name", AppName}
	if n.Icon != "" {
		args = append(args, "--icon", n.Icon)
	}
	if n.HasTimeout() {
		args = append(args, "--expire-time", strconv.Itoa(n.Timeout))
	}
	if n.Transient {
		args = append(args, "--hint", "int:transient:1")
	}
	if n.Urgency != "" {
		args = append(args, "--urgency", n.Urgency)
	}

	source := n.Source
	if source == "" {
		// notify-send refuses an empty summary.
		source = "-"
	}

	// notify-send interprets backslash escapes in the body.
	return append(args, "--", source, textutil.EscapeShellArg(n.Message))
}
