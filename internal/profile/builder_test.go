package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/vocab"
)

var testClock = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testVocabulary() *vocab.Vocabulary {
	return &vocab.Vocabulary{
		Skills: []string{"python", "go", "sql", "rust"},
		Titles: []string{"software engineer", "engineering manager"},
	}
}

const sampleResume = `Jane Doe
jane.doe@example.com

Software Engineer at Acme, 2018 - 2021
Engineering Manager at Globex, 2021 - present

Skills: Python, Go, SQL`

func TestBuild_FullProfile(t *testing.T) {
	got := Build(sampleResume, "resumes/jane.pdf", testVocabulary(), testClock)

	assert.NotEqual(t, uuid.Nil, got.CandidateID)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane.doe@example.com", got.Email)
	assert.Equal(t, []string{"go", "python", "sql"}, got.Skills)
	assert.Equal(t, []string{"software engineer", "engineering manager"}, got.Titles)
	assert.Equal(t, 6.0, got.TotalExperienceYears)
	assert.Equal(t, "resumes/jane.pdf", got.RawTextRef)
	assert.Equal(t, testClock, got.CreatedAt)
}

func TestBuild_EmptyText(t *testing.T) {
	got := Build("", "ref", testVocabulary(), testClock)

	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Titles)
	assert.Equal(t, 0.0, got.TotalExperienceYears)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, "", got.Email)
}

func TestBuild_NilVocabularyDegradesToEmptySets(t *testing.T) {
	got := Build(sampleResume, "ref", nil, testClock)

	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Titles)
	// Experience and contact extraction do not depend on the vocabulary.
	assert.Equal(t, 6.0, got.TotalExperienceYears)
	assert.Equal(t, "Jane Doe", got.Name)
}

func TestBuild_DeterministicContent(t *testing.T) {
	a := Build(sampleResume, "ref", testVocabulary(), testClock)
	b := Build(sampleResume, "ref", testVocabulary(), testClock)

	// Identical inputs yield identical content; only the generated id differs.
	assert.Equal(t, a.Skills, b.Skills)
	assert.Equal(t, a.Titles, b.Titles)
	assert.Equal(t, a.TotalExperienceYears, b.TotalExperienceYears)
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Email, b.Email)
	assert.NotEqual(t, a.CandidateID, b.CandidateID)
}

func TestBuild_FreshIDPerDocument(t *testing.T) {
	seen := make(map[uuid.UUID]struct{})
	for i := 0; i < 10; i++ {
		p := Build(sampleResume, "ref", testVocabulary(), testClock)
		_, dup := seen[p.CandidateID]
		assert.False(t, dup)
		seen[p.CandidateID] = struct{}{}
	}
}
