package identity

import "github.com/Veraticus/weechat-notify-send/pkg/host"

const (
	// unjoinedChannelSentinel starts the short name of channels some
	// integrations (wee_slack) list before they are joined.
	unjoinedChannelSentinel = '>'
	channelPrefix           = '#'
)

// NamesForBuffer returns the full name and short name of a buffer, without
// empties or duplicates. A short name starting with '>' is followed by the
// same name with '#' in its place.
func NamesForBuffer(buffers host.BufferStore, buffer string) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	add(buffers.BufferString(buffer, host.PropName))

	shortName := buffers.BufferString(buffer, host.PropShortName)
	add(shortName)
	if shortName != "" && shortName[0] == unjoinedChannelSentinel {
		add(string(channelPrefix) + shortName[1:])
	}

	return names
}
