// Package extraction spots vocabulary terms, experience signals and
// contact fields in resume text. All functions are pure: given the same
// text and vocabulary they return the same result, and an empty
// vocabulary yields an empty result rather than an error.
package extraction

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExtractSkills returns the set of vocabulary skill terms present in the
// normalized text as whole words or contiguous phrases. The result is
// sorted and deduplicated; vocabulary order never affects membership.
//
// Matching is exact-substring on normalized forms. No stemming or fuzzy
// matching: a missed synonym is preferred over a false positive.
func ExtractSkills(text string, skills []string) []string {
	found := make(map[string]struct{})
	for _, skill := range skills {
		if indexOfTerm(text, skill) >= 0 {
			found[skill] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// ExtractTitles returns the vocabulary title terms present in the
// normalized text, deduplicated and ordered by first occurrence in the
// text (not by vocabulary order).
func ExtractTitles(text string, titles []string) []string {
	type hit struct {
		index int
		title string
	}

	hits := make([]hit, 0)
	seen := make(map[string]struct{})
	for _, title := range titles {
		if _, ok := seen[title]; ok {
			continue
		}
		if idx := indexOfTerm(text, title); idx >= 0 {
			seen[title] = struct{}{}
			hits = append(hits, hit{index: idx, title: title})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].index != hits[j].index {
			return hits[i].index < hits[j].index
		}
		return hits[i].title < hits[j].title
	})

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.title)
	}
	return out
}

// indexOfTerm returns the byte index of the first whole-word occurrence
// of term in text, or -1. A match counts as whole-word when the runes
// adjacent to it are not letters or digits, so "go" does not match
// inside "golang" but does match in "go, sql".
func indexOfTerm(text, term string) int {
	if term == "" {
		return -1
	}

	for from := 0; from <= len(text)-len(term); {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return -1
		}
		idx := from + i
		if isWholeWordAt(text, idx, len(term)) {
			return idx
		}
		from = idx + 1
	}
	return -1
}

func isWholeWordAt(text string, idx, length int) bool {
	if idx > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:idx])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end := idx + length; end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
