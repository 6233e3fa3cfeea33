package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// Memory is an in-memory Store for tests and databaseless development
// runs. Safe for concurrent use; data is lost on process exit.
type Memory struct {
	mu         sync.RWMutex
	candidates map[uuid.UUID]types.Report
	jobs       map[string]types.JobPosting
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		candidates: make(map[uuid.UUID]types.Report),
		jobs:       make(map[string]types.JobPosting),
	}
}

// SaveCandidate stores the profile and match list as one unit, replacing
// any previous entry for the same candidate id.
func (m *Memory) SaveCandidate(_ context.Context, profile types.CandidateProfile, matches []types.MatchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates[profile.CandidateID] = types.Report{
		CandidateProfile: profile,
		Matches:          append([]types.MatchResult(nil), matches...),
	}
	return nil
}

// GetCandidate returns one candidate's profile and match list.
func (m *Memory) GetCandidate(_ context.Context, id uuid.UUID) (*types.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	report, ok := m.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	report.Matches = append([]types.MatchResult(nil), report.Matches...)
	return &report, nil
}

// ListCandidates returns all candidates, newest first.
func (m *Memory) ListCandidates(_ context.Context) ([]types.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reports := make([]types.Report, 0, len(m.candidates))
	for _, report := range m.candidates {
		report.Matches = append([]types.MatchResult(nil), report.Matches...)
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		}
		return reports[i].CandidateID.String() < reports[j].CandidateID.String()
	})
	return reports, nil
}

// UpsertJob creates or replaces a job posting.
func (m *Memory) UpsertJob(_ context.Context, job types.JobPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job.RequiredSkills = append([]string(nil), job.RequiredSkills...)
	m.jobs[job.JobID] = job
	return nil
}

// GetJob returns a job posting by id.
func (m *Memory) GetJob(_ context.Context, jobID string) (*types.JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, ErrNotFound
	}
	job.RequiredSkills = append([]string(nil), job.RequiredSkills...)
	return &job, nil
}

// ListJobs returns the catalog snapshot ordered by job id.
func (m *Memory) ListJobs(_ context.Context) ([]types.JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	jobs := make([]types.JobPosting, 0, len(m.jobs))
	for _, job := range m.jobs {
		job.RequiredSkills = append([]string(nil), job.RequiredSkills...)
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].JobID < jobs[j].JobID })
	return jobs, nil
}
