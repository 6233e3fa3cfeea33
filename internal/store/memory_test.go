package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func sampleProfile(id uuid.UUID) types.CandidateProfile {
	return types.CandidateProfile{
		CandidateID:          id,
		Name:                 "Jane Doe",
		Email:                "jane@example.com",
		Skills:               []string{"go", "sql"},
		Titles:               []string{"software engineer"},
		TotalExperienceYears: 6,
		RawTextRef:           "resumes/jane.pdf",
		CreatedAt:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMemory_SaveAndGetCandidate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	id := uuid.New()
	matches := []types.MatchResult{{CandidateID: id, JobID: "job-1", Score: 0.5}}

	require.NoError(t, m.SaveCandidate(ctx, sampleProfile(id), matches))

	report, err := m.GetCandidate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", report.Name)
	assert.Equal(t, matches, report.Matches)
}

func TestMemory_GetCandidateNotFound(t *testing.T) {
	_, err := NewMemory().GetCandidate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_UpsertReplacesProfileAndMatches(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	id := uuid.New()

	require.NoError(t, m.SaveCandidate(ctx, sampleProfile(id),
		[]types.MatchResult{{CandidateID: id, JobID: "old", Score: 0.9}}))

	updated := sampleProfile(id)
	updated.Skills = []string{"python"}
	require.NoError(t, m.SaveCandidate(ctx, updated,
		[]types.MatchResult{{CandidateID: id, JobID: "new", Score: 0.4}}))

	report, err := m.GetCandidate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, report.Skills)
	require.Len(t, report.Matches, 1)
	assert.Equal(t, "new", report.Matches[0].JobID)
}

func TestMemory_ListCandidatesNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	older := sampleProfile(uuid.New())
	newer := sampleProfile(uuid.New())
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)

	require.NoError(t, m.SaveCandidate(ctx, older, nil))
	require.NoError(t, m.SaveCandidate(ctx, newer, nil))

	reports, err := m.ListCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, newer.CandidateID, reports[0].CandidateID)
}

func TestMemory_JobCatalog(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.UpsertJob(ctx, types.JobPosting{JobID: "b", Title: "Backend", RequiredSkills: []string{"go"}}))
	require.NoError(t, m.UpsertJob(ctx, types.JobPosting{JobID: "a", Title: "Data", RequiredSkills: []string{"sql"}}))

	jobs, err := m.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a", jobs[0].JobID) // snapshot ordered by job id
	assert.Equal(t, "b", jobs[1].JobID)

	job, err := m.GetJob(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Backend", job.Title)

	_, err = m.GetJob(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_UpsertJobReplaces(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.UpsertJob(ctx, types.JobPosting{JobID: "a", Title: "Old", RequiredSkills: []string{"go"}}))
	require.NoError(t, m.UpsertJob(ctx, types.JobPosting{JobID: "a", Title: "New", RequiredSkills: []string{"rust"}}))

	job, err := m.GetJob(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "New", job.Title)
	assert.Equal(t, []string{"rust"}, job.RequiredSkills)
}

func TestMemory_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	id := uuid.New()
	require.NoError(t, m.SaveCandidate(ctx, sampleProfile(id),
		[]types.MatchResult{{CandidateID: id, JobID: "job-1", Score: 0.5}}))

	report, err := m.GetCandidate(ctx, id)
	require.NoError(t, err)
	report.Matches[0].JobID = "mutated"

	fresh, err := m.GetCandidate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "job-1", fresh.Matches[0].JobID)
}
