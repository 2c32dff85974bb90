package textpool

import (
	"strings"
	"unicode"
)

// Normalize collapses whitespace runs to single spaces and drops control characters.
func Normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}
