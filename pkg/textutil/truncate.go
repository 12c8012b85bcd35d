// Package textutil holds the string transforms applied to notification text.
package textutil

import "github.com/rivo/uniseg"

// Length returns the number of user-perceived characters (grapheme clusters)
// in text.
func Length(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Head returns the first n characters of text. Grapheme clusters are never
// split, so a combining sequence or a multi-byte rune stays whole.
func Head(text string, n int) string {
	if n <= 0 {
		return ""
	}

	g := uniseg.NewGraphemes(text)
	end := 0
	for count := 0; count < n && g.Next(); count++ {
		_, end = g.Positions()
	}
	return text[:end]
}

// Truncate shortens text to at most maxLength characters, ellipsis included.
//
// A maxLength of zero or less disables truncation. When the ellipsis alone
// does not fit into maxLength, the first maxLength characters of the
// ellipsis are returned.
func Truncate(text string, maxLength int, ellipsis string) string {
	if maxLength <= 0 || Length(text) <= maxLength {
		return text
	}

	ellipsisLength := Length(ellipsis)
	if ellipsisLength >= maxLength {
		return Head(ellipsis, maxLength)
	}

	return Head(text, maxLength-ellipsisLength) + ellipsis
}
