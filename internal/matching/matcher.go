// Package matching ranks job postings against candidate skill sets
// using Jaccard similarity.
package matching

import (
	"math"
	"sort"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

// scorePrecision is the number of decimal places scores are rounded to
// for stable display and comparison.
const scorePrecision = 2

// Rank computes the candidate's match list against a read snapshot of
// the job catalog. One MatchResult is produced per posting whose
// required-skill set and the candidate's skill set are both non-empty;
// a disjoint pair scores 0.0, while a pair with an empty side is
// omitted entirely (undefined similarity, not zero). Malformed catalog
// entries (missing jobId or required skills) are skipped, never fatal.
//
// Results are ordered by descending score, ties broken by ascending
// jobId. maxMatches > 0 truncates to the top entries; 0 keeps all.
// Pure and deterministic: re-running with an unchanged catalog is
// idempotent.
func Rank(candidate *types.CandidateProfile, catalog []types.JobPosting, maxMatches int) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(catalog))

	candidateSkills := NormalizeSkillSet(candidate.Skills)
	if len(candidateSkills) == 0 {
		return results
	}

	for _, job := range catalog {
		if job.JobID == "" || !job.HasRequiredSkills() {
			continue
		}
		required := NormalizeSkillSet(job.RequiredSkills)
		if len(required) == 0 {
			continue
		}

		results = append(results, types.MatchResult{
			CandidateID: candidate.CandidateID,
			JobID:       job.JobID,
			Score:       roundScore(jaccard(candidateSkills, required)),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].JobID < results[j].JobID
	})

	if maxMatches > 0 && len(results) > maxMatches {
		results = results[:maxMatches]
	}
	return results
}

// NormalizeSkillSet normalizes each skill string and deduplicates the
// result into a set, dropping entries that normalize to nothing. Both
// sides of every comparison go through this, so candidate skills and
// job requirements agree on casing and whitespace.
func NormalizeSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if normalized := ingestion.NormalizeText(s); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

// SortedSkills returns a sorted copy of skills, the stable order used
// for stored and served skill sets.
func SortedSkills(skills []string) []string {
	out := append([]string(nil), skills...)
	sort.Strings(out)
	return out
}

// jaccard returns |a∩b| / |a∪b|. Both sets are non-empty by the time
// this is called; an empty union still guards against division by zero.
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for s := range a {
		if _, ok := b[s]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func roundScore(s float64) float64 {
	shift := math.Pow10(scorePrecision)
	return math.Round(s*shift) / shift
}
