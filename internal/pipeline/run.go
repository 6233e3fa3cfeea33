// Package pipeline provides the high-level orchestration for processing
// resume documents into stored candidate profiles and match lists.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/profile"
	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/vocab"
)

// Document is one unit of work: the raw extracted text of a resume plus
// an opaque reference to its source (object key, file path).
type Document struct {
	RawText    string
	RawTextRef string
}

// Runner wires the vocabulary, the job-catalog source and the store for
// pipeline runs. The vocabulary and catalog snapshot are read-only for
// the duration of a run, so independent documents can be processed
// concurrently with no coordination.
type Runner struct {
	Vocab *vocab.Vocabulary
	Store store.Store

	// MaxMatches caps each candidate's match list; 0 keeps all matches.
	MaxMatches int

	// Now overrides the clock (tests pin the "present" year). Nil means
	// time.Now.
	Now func() time.Time
}

// Process runs one document through the full sequence: normalize →
// extract → estimate → build → match → write. All-or-nothing: any
// failure abandons the unit with no partial profile written. The
// returned report is exactly what was persisted.
func (r *Runner) Process(ctx context.Context, doc Document) (*types.Report, error) {
	if strings.TrimSpace(doc.RawText) == "" {
		return nil, fmt.Errorf("document %q: %w", doc.RawTextRef, ingestion.ErrNoText)
	}

	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	candidate := profile.Build(doc.RawText, doc.RawTextRef, r.Vocab, now)

	catalog, err := r.Store.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load job catalog: %w", err)
	}

	matches := matching.Rank(&candidate, catalog, r.MaxMatches)

	if err := r.Store.SaveCandidate(ctx, candidate, matches); err != nil {
		return nil, fmt.Errorf("failed to persist candidate %s: %w", candidate.CandidateID, err)
	}

	return &types.Report{CandidateProfile: candidate, Matches: matches}, nil
}

// ProcessAll fans out over independent documents with up to workers
// concurrent runs. Outputs are keyed by distinct candidate ids and
// writes are upserts, so no ordering is guaranteed across documents.
// The first failure cancels the remaining work and is returned.
func (r *Runner) ProcessAll(ctx context.Context, docs []Document, workers int) ([]*types.Report, error) {
	if workers < 1 {
		workers = 1
	}

	reports := make([]*types.Report, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		g.Go(func() error {
			report, err := r.Process(ctx, doc)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
