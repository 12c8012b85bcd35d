// Package identity resolves who sent a message and which names a buffer
// answers to.
package identity

import "strings"

// modeMarkers are the characters the host may put in front of a nick in the
// prefix column: owner, admin, op, halfop, voice, "no mode", and the space
// some protocols use for alignment.
const modeMarkers = "~&@%+- "

const nickTagPrefix = "nick_"

// NickFromPrefix strips a single leading mode marker from a prefix.
// Only one character is ever removed, so " @john" yields "@john".
func NickFromPrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	if strings.IndexByte(modeMarkers, prefix[0]) >= 0 {
		return prefix[1:]
	}
	return prefix
}

// NickFromTags returns the nick carried by a "nick_<name>" tag.
func NickFromTags(tags []string) (string, bool) {
	for _, tag := range tags {
		if strings.HasPrefix(tag, nickTagPrefix) {
			return tag[len(nickTagPrefix):], true
		}
	}
	return "", false
}

// NickThatSentMessage prefers the nick tag and falls back to the prefix.
func NickThatSentMessage(tags []string, prefix string) string {
	if nick, ok := NickFromTags(tags); ok {
		return nick
	}
	return NickFromPrefix(prefix)
}
