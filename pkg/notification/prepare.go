package notification

import (
	"strconv"
	"strings"

	"github.com/Veraticus/weechat-notify-send/pkg/config"
	"github.com/Veraticus/weechat-notify-send/pkg/host"
	"github.com/Veraticus/weechat-notify-send/pkg/textutil"
)

// Preparer turns accepted chat lines into notifications.
type Preparer struct {
	cfg     config.Accessor
	buffers host.BufferStore
}

// NewPreparer creates a preparer reading options from cfg and buffer names
// from buffers.
func NewPreparer(cfg config.Accessor, buffers host.BufferStore) *Preparer {
	return &Preparer{cfg: cfg, buffers: buffers}
}

// Prepare builds the notification for a line. Highlights and channel lines
// are titled with the buffer and prefixed with the nick; private messages
// are titled with the nick alone.
func (p *Preparer) Prepare(buffer string, isHighlight bool, nick, message string) Notification {
	var source string
	if isHighlight || !p.isPrivate(buffer) {
		source = p.buffers.BufferString(buffer, host.PropShortName)
		if source == "" {
			source = p.buffers.BufferString(buffer, host.PropName)
		}
		message = nick + p.nickSeparator() + message
	} else {
		source = nick
	}

	if maxLength := config.Int(p.cfg, config.MaxLength, 0); maxLength > 0 {
		message = textutil.Truncate(message, maxLength, p.cfg.Get(config.Ellipsis))
	}
	if config.On(p.cfg, config.EscapeHTML) {
		message = textutil.EscapeHTML(message)
	}

	return Notification{
		Source:    source,
		Message:   message,
		Icon:      p.cfg.Get(config.Icon),
		Timeout:   p.timeout(),
		Transient: config.On(p.cfg, config.Transient),
		Urgency:   strings.TrimSpace(p.cfg.Get(config.Urgency)),
	}
}

func (p *Preparer) isPrivate(buffer string) bool {
	return p.buffers.BufferString(buffer, host.LocalvarType) == host.BufferTypePrivate
}

func (p *Preparer) nickSeparator() string {
	if sep := p.cfg.Get(config.NickSeparator); sep != "" {
		return sep
	}
	return config.DefaultValueOf(config.NickSeparator)
}

func (p *Preparer) timeout() int {
	v := strings.TrimSpace(p.cfg.Get(config.Timeout))
	if v == "" {
		return TimeoutUnset
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return TimeoutUnset
	}
	return ms
}
