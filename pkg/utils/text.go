package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SafeText drops invalid UTF-8 and control characters and collapses runs of
// whitespace into a single space.
func SafeText(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
