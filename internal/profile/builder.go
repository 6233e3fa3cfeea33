// Package profile assembles extractor outputs into immutable candidate
// records.
package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/vocab"
)

// Build runs the extraction stages over one document's raw text and
// assembles the result into a CandidateProfile with a fresh candidate
// id. Pure assembly: missing contact fields stay empty, a nil or empty
// vocabulary degrades to empty skill/title sets, and the only
// non-deterministic outputs are the generated id and CreatedAt.
//
// The raw text is kept alongside its normalized form because the name
// heuristic and the email pattern need the original line structure and
// casing, which normalization destroys.
func Build(raw, rawTextRef string, v *vocab.Vocabulary, now time.Time) types.CandidateProfile {
	if v == nil {
		v = &vocab.Vocabulary{}
	}

	normalized := ingestion.NormalizeText(raw)

	return types.CandidateProfile{
		CandidateID:          uuid.New(),
		Name:                 extraction.ExtractName(raw),
		Email:                extraction.ExtractEmail(raw),
		Skills:               extraction.ExtractSkills(normalized, v.Skills),
		Titles:               extraction.ExtractTitles(normalized, v.Titles),
		TotalExperienceYears: extraction.EstimateExperience(normalized, now),
		RawTextRef:           rawTextRef,
		CreatedAt:            now.UTC(),
	}
}
