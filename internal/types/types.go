// Package types defines the domain records shared across the screening pipeline.
package types

import (
	"time"

	"github.com/google/uuid"
)

// JobPosting is one open position with its required skill set.
// Postings are created by recruiters through the API layer and are
// read-only to the processing pipeline.
type JobPosting struct {
	JobID          string   `json:"jobId"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"required_skills"`
}

// HasRequiredSkills reports whether the posting carries a usable,
// non-empty skill set. Postings without one are skipped during matching
// rather than failing the batch.
func (p *JobPosting) HasRequiredSkills() bool {
	for _, s := range p.RequiredSkills {
		if s != "" {
			return true
		}
	}
	return false
}

// CandidateProfile is the normalized record extracted from one resume
// document. It is created once per processed document and never mutated
// afterwards; reprocessing a corrected document replaces the whole record.
type CandidateProfile struct {
	CandidateID uuid.UUID `json:"candidateId"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`

	// Skills is a deduplicated, sorted set of vocabulary terms found in
	// the text. Titles preserves first-occurrence order instead.
	Skills []string `json:"skills"`
	Titles []string `json:"titles"`

	// TotalExperienceYears is a best-effort estimate; 0 when the text
	// yields no parsable signal.
	TotalExperienceYears float64 `json:"total_experience_years"`

	// RawTextRef is an opaque pointer to the source document (object
	// key, file path). The pipeline never interprets it.
	RawTextRef string `json:"rawTextRef,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// MatchResult scores one (candidate, job) pair. Results exist only for
// pairs where both skill sets are non-empty; a disjoint pair scores 0.0,
// which is distinct from "no result" (undefined similarity).
type MatchResult struct {
	CandidateID uuid.UUID `json:"candidateId"`
	JobID       string    `json:"jobId"`
	Score       float64   `json:"score"`
}

// Report is the downloadable rendering of one candidate: the profile
// plus its ranked match list, produced together in a single pipeline run.
type Report struct {
	CandidateProfile
	Matches []MatchResult `json:"matches"`
}
