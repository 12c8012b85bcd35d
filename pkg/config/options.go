package config

import "fmt"

// Option names.
const (
	NotifyOnHighlights           = "notify_on_highlights"
	NotifyOnPrivmsgs             = "notify_on_privmsgs"
	NotifyOnFilteredMessages     = "notify_on_filtered_messages"
	NotifyWhenAway               = "notify_when_away"
	NotifyForCurrentBuffer       = "notify_for_current_buffer"
	NotifyOnAllMessagesInBuffers = "notify_on_all_messages_in_buffers"
	NotifyOnMessagesThatMatch    = "notify_on_messages_that_match"
	MinNotificationDelay         = "min_notification_delay"
	IgnoreMessagesTaggedWith     = "ignore_messages_tagged_with"
	IgnoreBuffers                = "ignore_buffers"
	IgnoreBuffersStartingWith    = "ignore_buffers_starting_with"
	IgnoreNicks                  = "ignore_nicks"
	IgnoreNicksStartingWith      = "ignore_nicks_starting_with"
	NickSeparator                = "nick_separator"
	EscapeHTML                   = "escape_html"
	MaxLength                    = "max_length"
	Ellipsis                     = "ellipsis"
	Icon                         = "icon"
	Timeout                      = "timeout"
	Transient                    = "transient"
	Urgency                      = "urgency"
)

// Option describes one setting of the plugin.
type Option struct {
	Name        string
	Default     string
	Description string
}

// Options is the full option table, in the order it is presented to users.
var Options = []Option{
	{NotifyOnHighlights, "on", "Send notifications on highlights."},
	{NotifyOnPrivmsgs, "on", "Send notifications on private messages."},
	{NotifyOnFilteredMessages, "off", "Send notifications also on filtered (hidden) messages."},
	{NotifyWhenAway, "on", "Send also notifications when away."},
	{NotifyForCurrentBuffer, "on", "Send also notifications for the currently active buffer."},
	{NotifyOnAllMessagesInBuffers, "", "A comma-separated list of buffers for which you want to receive notifications on all messages that appear in them."},
	{NotifyOnMessagesThatMatch, "", "A comma-separated list of regex patterns that you want to receive notifications on when message matches."},
	{MinNotificationDelay, "500", "A minimal delay between successive notifications from the same buffer (in milliseconds; set to 0 to show all notifications)."},
	{IgnoreMessagesTaggedWith, "notify_none,irc_join,irc_quit,irc_part,irc_status,irc_nick_back,irc_401,irc_402", "A comma-separated list of message tags for which no notifications should be shown."},
	{IgnoreBuffers, "", "A comma-separated list of buffers from which no notifications should be shown."},
	{IgnoreBuffersStartingWith, "", "A comma-separated list of buffer prefixes from which no notifications should be shown."},
	{IgnoreNicks, "", "A comma-separated list of nicks from which no notifications should be shown."},
	{IgnoreNicksStartingWith, "", "A comma-separated list of nick prefixes from which no notifications should be shown."},
	{NickSeparator, ": ", "A separator between a nick and a message."},
	{EscapeHTML, "on", "Escapes the '<', '>', and '&' characters in notification messages."},
	{MaxLength, "72", "Maximal length of a notification (0 means no limit)."},
	{Ellipsis, "[..]", "Ellipsis to be used for notifications that are too long."},
	{Icon, "/usr/share/icons/hicolor/32x32/apps/weechat.png", "Path to an icon to be shown in notifications."},
	{Timeout, "5000", "Time after which the notification disappears (in milliseconds; set to 0 to disable)."},
	{Transient, "on", "When a notification expires or is dismissed, remove it from the notification bar."},
	{Urgency, "normal", "Urgency (low, normal, critical)."},
}

var optionIndex = func() map[string]Option {
	m := make(map[string]Option, len(Options))
	for _, o := range Options {
		m[o.Name] = o
	}
	return m
}()

// Lookup returns the option with the given name.
func Lookup(name string) (Option, bool) {
	o, ok := optionIndex[name]
	return o, ok
}

// DefaultValueOf returns the default of an option, or "" for unknown names.
func DefaultValueOf(name string) string {
	return optionIndex[name].Default
}

// Defaults returns a fresh name -> default map.
func Defaults() map[string]string {
	values := make(map[string]string, len(Options))
	for _, o := range Options {
		values[o.Name] = o.Default
	}
	return values
}

// DescriptionWithDefault appends the default value to a description.
func DescriptionWithDefault(description, defaultValue string) string {
	if defaultValue == "" {
		defaultValue = `""`
	}
	return fmt.Sprintf("%s Default: %s.", description, defaultValue)
}
