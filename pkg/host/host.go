// Package host describes the chat client the notifier plugs into: the
// events it delivers and the buffer attributes it lets plugins read and
// write.
package host

import "time"

// RCOK is returned to the host from every event handler.
const RCOK = 0

// Buffer properties and local variables read by the notifier.
const (
	PropName      = "name"
	PropShortName = "short_name"

	LocalvarNick = "localvar_nick"
	LocalvarType = "localvar_type"
	LocalvarAway = "localvar_away"

	// LocalvarLastNotificationTime holds the debounce marker in decimal
	// seconds since the epoch.
	LocalvarLastNotificationTime = "localvar_notify_send_last_notification_time"
)

// BufferTypePrivate is the localvar_type of one-to-one conversations.
const BufferTypePrivate = "private"

// BufferStore reads and writes string attributes of host buffers.
// Unset attributes read as the empty string.
type BufferStore interface {
	BufferString(buffer, property string) string
	SetBufferString(buffer, property, value string)
	CurrentBuffer() string
}

// PrintEvent is one line printed into a buffer.
type PrintEvent struct {
	Buffer    string
	Date      time.Time
	Tags      []string
	Displayed bool
	Highlight bool
	Prefix    string
	Message   string
}
