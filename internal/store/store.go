// Package store persists candidate profiles, their match lists and the
// job catalog.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence boundary of the pipeline.
//
// SaveCandidate must be atomic: a reader never observes a profile
// without the match list from the same processing run, or vice versa.
// It upserts by candidate id, fully replacing both profile and matches
// on reprocessing. Write failures surface to the caller so the unit of
// work can be retried or dead-lettered; nothing is silently dropped.
type Store interface {
	SaveCandidate(ctx context.Context, profile types.CandidateProfile, matches []types.MatchResult) error
	GetCandidate(ctx context.Context, id uuid.UUID) (*types.Report, error)
	ListCandidates(ctx context.Context) ([]types.Report, error)

	// UpsertJob and ListJobs manage the job catalog. ListJobs is the
	// read snapshot handed to the matcher; the pipeline never mutates
	// postings.
	UpsertJob(ctx context.Context, job types.JobPosting) error
	GetJob(ctx context.Context, jobID string) (*types.JobPosting, error)
	ListJobs(ctx context.Context) ([]types.JobPosting, error)
}
