// Package notification builds notifications from chat lines and hands them
// to a desktop notification backend.
package notification

// TimeoutUnset leaves the expiry to the notification daemon.
const TimeoutUnset = -1

// AppName is the application name notifications are sent under.
const AppName = "weechat"

// Notification is a prepared desktop notification. Message is already
// truncated and escaped.
type Notification struct {
	Source    string
	Message   string
	Icon      string
	Timeout   int // milliseconds, 0 never expires, TimeoutUnset omits it
	Transient bool
	Urgency   string
}

// HasTimeout reports whether an expiry should be passed to the backend.
func (n Notification) HasTimeout() bool {
	return n.Timeout >= 0
}

// Notifier sends notifications.
type Notifier interface {
	Send(notification Notification) error
}
