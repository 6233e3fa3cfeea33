// Package ingestion turns uploaded documents into normalized text the
// extraction stages can match against.
package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// hyphenBreakRe matches hyphenation artifacts where OCR split a word
	// across a line break ("distrib-\nuted").
	hyphenBreakRe = regexp.MustCompile(`(\p{L})-[ \t]*\n[ \t]*(\p{L})`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// NormalizeText prepares raw extracted text for vocabulary matching:
// line-break hyphenation is joined, the text is lowercased, control
// characters are stripped, and runs of whitespace collapse to single
// spaces. The transform is pure and idempotent; empty input yields
// empty output.
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Join hyphenated words before line structure is destroyed.
	text = hyphenBreakRe.ReplaceAllString(text, "$1$2")

	text = strings.ToLower(text)

	text = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, text)

	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// FirstLine returns the first non-empty line of raw (pre-normalization)
// text, trimmed. Used as the candidate-name heuristic, since resumes
// conventionally open with the applicant's name.
func FirstLine(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
