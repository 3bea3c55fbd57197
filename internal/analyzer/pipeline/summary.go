package pipeline

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang-news-impact/internal/entity"
)

// SummaryComposer renders the final plain-text summary of an article.
type SummaryComposer struct{}

// NewSummaryComposer creates a new SummaryComposer.
func NewSummaryComposer() *SummaryComposer {
	return &SummaryComposer{}
}

// Compose writes four lines (headline, content, capitalised prediction,
// publication time), each terminated by "\n".
func (s *SummaryComposer) Compose(headline, prediction, content, publishedAt string) entity.SummaryResult {
	var b strings.Builder
	fmt.Fprintf(&b, "Headline: %s\n", headline)
	fmt.Fprintf(&b, "Content: %s\n", content)
	fmt.Fprintf(&b, "Predicted Market Impact: %s\n", Capitalize(prediction))
	fmt.Fprintf(&b, "Published At: %s\n", publishedAt)
	return entity.SummaryResult{Summary: b.String()}
}

// Capitalize title-cases the first character of s and lower-cases the rest.
// Only single-rune mappings apply, so "ß" stays "ß" rather than becoming "Ss".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(first)) + strings.ToLower(s[size:])
}
