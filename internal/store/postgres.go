package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-screener/internal/types"
)

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// EnsureSchema creates the tables if they do not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS jobs (
			job_id          TEXT PRIMARY KEY,
			title           TEXT NOT NULL,
			description     TEXT NOT NULL DEFAULT '',
			required_skills JSONB NOT NULL DEFAULT '[]',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS candidates (
			candidate_id           UUID PRIMARY KEY,
			name                   TEXT NOT NULL DEFAULT '',
			email                  TEXT NOT NULL DEFAULT '',
			skills                 JSONB NOT NULL DEFAULT '[]',
			titles                 JSONB NOT NULL DEFAULT '[]',
			total_experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
			raw_text_ref           TEXT NOT NULL DEFAULT '',
			created_at             TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS candidate_matches (
			candidate_id UUID NOT NULL REFERENCES candidates(candidate_id) ON DELETE CASCADE,
			job_id       TEXT NOT NULL,
			score        DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (candidate_id, job_id)
		);`

	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveCandidate writes the profile and its match list in one
// transaction. The upsert fully replaces any prior profile and matches
// for the same candidate id, so readers always see a consistent
// (profile, matches) pair from a single run.
func (p *Postgres) SaveCandidate(ctx context.Context, profile types.CandidateProfile, matches []types.MatchResult) error {
	skillsJSON, err := json.Marshal(profile.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	titlesJSON, err := json.Marshal(profile.Titles)
	if err != nil {
		return fmt.Errorf("failed to marshal titles: %w", err)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	_, err = tx.Exec(ctx,
		`INSERT INTO candidates (candidate_id, name, email, skills, titles, total_experience_years, raw_text_ref, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (candidate_id) DO UPDATE SET
			name = $2, email = $3, skills = $4, titles = $5,
			total_experience_years = $6, raw_text_ref = $7, created_at = $8`,
		profile.CandidateID, profile.Name, profile.Email, skillsJSON, titlesJSON,
		profile.TotalExperienceYears, profile.RawTextRef, profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate: %w", err)
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM candidate_matches WHERE candidate_id = $1`, profile.CandidateID)
	if err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}

	for _, m := range matches {
		_, err = tx.Exec(ctx,
			`INSERT INTO candidate_matches (candidate_id, job_id, score) VALUES ($1, $2, $3)`,
			profile.CandidateID, m.JobID, m.Score)
		if err != nil {
			return fmt.Errorf("failed to insert match for job %s: %w", m.JobID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit candidate %s: %w", profile.CandidateID, err)
	}
	return nil
}

// GetCandidate retrieves one candidate's profile and ranked match list.
func (p *Postgres) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Report, error) {
	profile, err := p.scanCandidate(ctx, id)
	if err != nil {
		return nil, err
	}

	matches, err := p.loadMatches(ctx, id)
	if err != nil {
		return nil, err
	}

	return &types.Report{CandidateProfile: *profile, Matches: matches}, nil
}

// ListCandidates retrieves all candidates with their match lists,
// newest first.
func (p *Postgres) ListCandidates(ctx context.Context) ([]types.Report, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT candidate_id, name, email, skills, titles, total_experience_years, raw_text_ref, created_at
		 FROM candidates ORDER BY created_at DESC, candidate_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	reports := make([]types.Report, 0)
	for rows.Next() {
		profile, err := scanProfileRow(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, types.Report{CandidateProfile: *profile})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	for i := range reports {
		matches, err := p.loadMatches(ctx, reports[i].CandidateID)
		if err != nil {
			return nil, err
		}
		reports[i].Matches = matches
	}
	return reports, nil
}

func (p *Postgres) scanCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT candidate_id, name, email, skills, titles, total_experience_years, raw_text_ref, created_at
		 FROM candidates WHERE candidate_id = $1`, id)

	profile, err := scanProfileRow(row)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return profile, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfileRow(row rowScanner) (*types.CandidateProfile, error) {
	var profile types.CandidateProfile
	var skillsJSON, titlesJSON []byte

	err := row.Scan(&profile.CandidateID, &profile.Name, &profile.Email,
		&skillsJSON, &titlesJSON, &profile.TotalExperienceYears,
		&profile.RawTextRef, &profile.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan candidate: %w", err)
	}

	if err := json.Unmarshal(skillsJSON, &profile.Skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills: %w", err)
	}
	if err := json.Unmarshal(titlesJSON, &profile.Titles); err != nil {
		return nil, fmt.Errorf("failed to parse titles: %w", err)
	}
	return &profile, nil
}

// loadMatches returns a candidate's matches in ranked order: descending
// score, ties by ascending job id, matching the matcher's ordering.
func (p *Postgres) loadMatches(ctx context.Context, id uuid.UUID) ([]types.MatchResult, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT candidate_id, job_id, score FROM candidate_matches
		 WHERE candidate_id = $1 ORDER BY score DESC, job_id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	defer rows.Close()

	matches := make([]types.MatchResult, 0)
	for rows.Next() {
		var m types.MatchResult
		if err := rows.Scan(&m.CandidateID, &m.JobID, &m.Score); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}
	return matches, nil
}

// UpsertJob creates or updates a job posting.
func (p *Postgres) UpsertJob(ctx context.Context, job types.JobPosting) error {
	skillsJSON, err := json.Marshal(job.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO jobs (job_id, title, description, required_skills)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (job_id) DO UPDATE SET
			title = $2, description = $3, required_skills = $4, updated_at = NOW()`,
		job.JobID, job.Title, job.Description, skillsJSON)
	if err != nil {
		return fmt.Errorf("failed to upsert job %s: %w", job.JobID, err)
	}
	return nil
}

// GetJob retrieves a job posting by id.
func (p *Postgres) GetJob(ctx context.Context, jobID string) (*types.JobPosting, error) {
	var job types.JobPosting
	var skillsJSON []byte

	err := p.pool.QueryRow(ctx,
		`SELECT job_id, title, description, required_skills FROM jobs WHERE job_id = $1`,
		jobID,
	).Scan(&job.JobID, &job.Title, &job.Description, &skillsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}

	if err := json.Unmarshal(skillsJSON, &job.RequiredSkills); err != nil {
		return nil, fmt.Errorf("failed to parse required skills: %w", err)
	}
	return &job, nil
}

// ListJobs returns the full job catalog ordered by job id. This is the
// read snapshot the matcher ranks against.
func (p *Postgres) ListJobs(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT job_id, title, description, required_skills FROM jobs ORDER BY job_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]types.JobPosting, 0)
	for rows.Next() {
		var job types.JobPosting
		var skillsJSON []byte
		if err := rows.Scan(&job.JobID, &job.Title, &job.Description, &skillsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if err := json.Unmarshal(skillsJSON, &job.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to parse required skills: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}
