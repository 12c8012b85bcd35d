// Package filter decides whether a printed line deserves a notification.
package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Veraticus/weechat-notify-send/pkg/config"
	"github.com/Veraticus/weechat-notify-send/pkg/host"
	"github.com/Veraticus/weechat-notify-send/pkg/identity"
)

// Rule names reported in a Decision.
const (
	RuleOwnMessage       = "own_message"
	RuleFilteredMessage  = "filtered_message"
	RuleCurrentBuffer    = "current_buffer"
	RuleAway             = "away"
	RuleIgnoredTag       = "ignored_tag"
	RuleIgnoredBuffer    = "ignored_buffer"
	RuleIgnoredNick      = "ignored_nick"
	RuleMinDelay         = "min_notification_delay"
	RuleMatchingMessage  = "matching_message"
	RulePrivateMessage   = "private_message"
	RuleHighlight        = "highlight"
	RuleAllMessagesInBuf = "all_messages_in_buffer"
	RuleDefault          = "default"
)

// Decision is the outcome of the filter chain together with the rule that
// produced it.
type Decision struct {
	Notify bool
	Rule   string
}

// Engine evaluates the filter chain against the current configuration and
// buffer attributes.
type Engine struct {
	cfg      config.Accessor
	buffers  host.BufferStore
	now      func() time.Time
	log      zerolog.Logger
	patterns *PatternMatcher
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger rejections are reported to at debug level.
func WithLogger(log zerolog.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// NewEngine creates a new filter engine
func NewEngine(cfg config.Accessor, buffers host.BufferStore, opts ...EngineOption) *Engine {
	e := &Engine{
		cfg:      cfg,
		buffers:  buffers,
		now:      time.Now,
		log:      zerolog.Nop(),
		patterns: NewPatternMatcher(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ShouldNotify reports whether a notification should be sent for a line.
func (e *Engine) ShouldNotify(buffer string, tags []string, nick string, isDisplayed, isHighlight bool, message string) bool {
	d := e.Decide(buffer, tags, nick, isDisplayed, isHighlight, message)
	e.log.Debug().
		Str("buffer", buffer).
		Str("nick", nick).
		Bool("notify", d.Notify).
		Str("rule", d.Rule).
		Msg("notification decision")
	return d.Notify
}

// Decide runs the filter chain. Checks run in a fixed order and the first
// one that applies wins; lines no rule accepts are rejected.
func (e *Engine) Decide(buffer string, tags []string, nick string, isDisplayed, isHighlight bool, message string) Decision {
	reject := func(rule string) Decision { return Decision{Notify: false, Rule: rule} }
	accept := func(rule string) Decision { return Decision{Notify: true, Rule: rule} }

	if e.isOwnMessage(buffer, nick) {
		return reject(RuleOwnMessage)
	}
	if !isDisplayed && !config.On(e.cfg, config.NotifyOnFilteredMessages) {
		return reject(RuleFilteredMessage)
	}
	if e.buffers.CurrentBuffer() == buffer && !config.On(e.cfg, config.NotifyForCurrentBuffer) {
		return reject(RuleCurrentBuffer)
	}
	if e.isAway(buffer) && !config.On(e.cfg, config.NotifyWhenAway) {
		return reject(RuleAway)
	}
	if e.IgnoreMessagesTaggedWith(tags) {
		return reject(RuleIgnoredTag)
	}
	if e.IgnoreBuffer(buffer) {
		return reject(RuleIgnoredBuffer)
	}
	if nick == "" || e.IgnoreNick(nick) {
		return reject(RuleIgnoredNick)
	}
	if e.IsBelowMinNotificationDelay(buffer) {
		return reject(RuleMinDelay)
	}

	if e.NotifyOnMessagesThatMatch(message) {
		return accept(RuleMatchingMessage)
	}
	if e.IsPrivateMessage(buffer) && config.On(e.cfg, config.NotifyOnPrivmsgs) {
		return accept(RulePrivateMessage)
	}
	if isHighlight && config.On(e.cfg, config.NotifyOnHighlights) {
		return accept(RuleHighlight)
	}
	if e.NotifyOnAllMessagesInBuffer(buffer) {
		return accept(RuleAllMessagesInBuf)
	}

	return reject(RuleDefault)
}

func (e *Engine) isOwnMessage(buffer, nick string) bool {
	return e.buffers.BufferString(buffer, host.LocalvarNick) == nick
}

func (e *Engine) isAway(buffer string) bool {
	return e.buffers.BufferString(buffer, host.LocalvarAway) != ""
}

// IsPrivateMessage reports whether buffer is a one-to-one conversation.
func (e *Engine) IsPrivateMessage(buffer string) bool {
	return e.buffers.BufferString(buffer, host.LocalvarType) == host.BufferTypePrivate
}

// IgnoreMessagesTaggedWith reports whether any tag is in the ignored set.
func (e *Engine) IgnoreMessagesTaggedWith(tags []string) bool {
	return containsAny(config.List(e.cfg, config.IgnoreMessagesTaggedWith), tags)
}

// IgnoreBuffer reports whether any name of buffer is ignored, either exactly
// or by prefix.
func (e *Engine) IgnoreBuffer(buffer string) bool {
	names := identity.NamesForBuffer(e.buffers, buffer)
	if containsAny(config.List(e.cfg, config.IgnoreBuffers), names) {
		return true
	}

	prefixes := config.List(e.cfg, config.IgnoreBuffersStartingWith)
	for _, name := range names {
		if hasAnyPrefix(name, prefixes) {
			return true
		}
	}
	return false
}

// IgnoreNick reports whether nick is ignored, either exactly or by prefix.
func (e *Engine) IgnoreNick(nick string) bool {
	if slices.Contains(config.List(e.cfg, config.IgnoreNicks), nick) {
		return true
	}
	return hasAnyPrefix(nick, config.List(e.cfg, config.IgnoreNicksStartingWith))
}

// NotifyOnMessagesThatMatch reports whether message matches any configured
// pattern.
func (e *Engine) NotifyOnMessagesThatMatch(message string) bool {
	return e.patterns.MatchAny(config.List(e.cfg, config.NotifyOnMessagesThatMatch), message)
}

// NotifyOnAllMessagesInBuffer reports whether buffer is listed for
// notifications on every message.
func (e *Engine) NotifyOnAllMessagesInBuffer(buffer string) bool {
	names := identity.NamesForBuffer(e.buffers, buffer)
	return containsAny(config.List(e.cfg, config.NotifyOnAllMessagesInBuffers), names)
}

func containsAny(set, candidates []string) bool {
	for _, c := range candidates {
		if slices.Contains(set, c) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
