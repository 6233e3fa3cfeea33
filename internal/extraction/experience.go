package extraction

import (
	"regexp"
	"strconv"
	"time"
)

var (
	// dateRangeRe matches employment ranges like "2018 - 2021" or
	// "2019 - present" in normalized text.
	dateRangeRe = regexp.MustCompile(`\b((?:19|20)\d{2})\s*[-–—]\s*((?:19|20)\d{2}|present|current)\b`)

	// yearsPhraseRe matches explicit mentions like "7 years" or "5+ years".
	yearsPhraseRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*years?\b`)
)

// EstimateExperience derives a best-effort total-years estimate from
// normalized resume text. Date ranges take precedence: the durations of
// all detected ranges are summed, with "present"/"current" resolved to
// now's calendar year. Overlapping ranges are summed, not merged, so
// concurrent positions double-count. When no range parses, the maximum
// explicit "N years" mention is used. Unparsable text yields 0; this
// estimator never fails.
func EstimateExperience(text string, now time.Time) float64 {
	total := 0.0
	ranged := false
	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := now.Year()
		if m[2] != "present" && m[2] != "current" {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if end < start {
			continue
		}
		ranged = true
		total += float64(end - start)
	}
	if ranged {
		return total
	}

	best := 0.0
	for _, m := range yearsPhraseRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if n > best {
			best = n
		}
	}
	return best
}
