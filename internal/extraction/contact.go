package extraction

import (
	"regexp"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// maxNameLength caps the name heuristic so a pathological first line
// (e.g. a full paragraph) does not become the candidate name.
const maxNameLength = 80

// ExtractEmail returns the first email address found in the text, or an
// empty string. Operates on raw text since addresses are case-sensitive
// in their local part.
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractName guesses the candidate's name from the raw document text.
// Resumes conventionally open with the applicant's name, so the first
// non-empty line is used. Best-effort: an empty result means absent,
// never an error.
func ExtractName(raw string) string {
	line := ingestion.FirstLine(raw)
	if len(line) > maxNameLength {
		return ""
	}
	return line
}
