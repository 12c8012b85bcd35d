package textutil

import "strings"

// EscapeHTML escapes the three characters notification servers interpret as
// markup. Quotes are left alone.
//
// The ampersand goes first so the entities produced for '<' and '>' are not
// escaped a second time. The function is not idempotent: "&lt;" becomes
// "&amp;lt;".
func EscapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// EscapeShellArg doubles every backslash so notify-send, which expands
// backslash escapes in its arguments, prints them literally.
func EscapeShellArg(text string) string {
	return strings.ReplaceAll(text, `\`, `\\`)
}
