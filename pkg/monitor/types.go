package monitor

import (
	"errors"

	"github.com/Veraticus/weechat-notify-send/pkg/notification"
)

// Event names understood on the input feed.
const (
	EventPrint  = "print"
	EventBuffer = "buffer"
	EventFocus  = "focus"
	EventClose  = "close"
)

// ErrUnknownEvent is returned for lines whose event name is not recognised.
var ErrUnknownEvent = errors.New("unknown event")

// Event is one line of the input feed.
type Event struct {
	Event     string            `json:"event"`
	Buffer    string            `json:"buffer"`
	Date      int64             `json:"date,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	Displayed *bool             `json:"displayed,omitempty"` // missing means displayed
	Highlight bool              `json:"highlight,omitempty"`
	Prefix    string            `json:"prefix,omitempty"`
	Message   string            `json:"message,omitempty"`
	Strings   map[string]string `json:"strings,omitempty"`
}

// Filter decides whether a line is worth a notification.
type Filter interface {
	ShouldNotify(buffer string, tags []string, nick string, isDisplayed, isHighlight bool, message string) bool
}

// Preparer builds the notification for an accepted line.
type Preparer interface {
	Prepare(buffer string, isHighlight bool, nick, message string) notification.Notification
}

// Dispatcher delivers a notification and reports whether it went out.
// It must not fail the caller.
type Dispatcher interface {
	Send(n notification.Notification) bool
}

// BufferRegistry receives buffer lifecycle events.
type BufferRegistry interface {
	Update(buffer string, values map[string]string)
	Remove(buffer string)
	SetCurrentBuffer(buffer string)
}

// Stats counts what the monitor has done so far.
type Stats struct {
	Lines    int
	Prints   int
	Notified int
	Failed   int
	Invalid  int
}
