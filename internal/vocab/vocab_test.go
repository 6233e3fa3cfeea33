package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVocabFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeVocabFile(t, `{
		"skills": ["Python", "Go", "machine   learning"],
		"titles": ["Software Engineer"]
	}`)

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "go", "machine learning"}, v.Skills)
	assert.Equal(t, []string{"software engineer"}, v.Titles)
}

func TestLoad_DeduplicatesAfterNormalization(t *testing.T) {
	path := writeVocabFile(t, `{"skills": ["Go", "go", "GO "], "titles": []}`)

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, v.Skills)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	v, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, v.Skills)
	assert.NotEmpty(t, v.Titles)
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"non-string skill": `{"skills": [42], "titles": []}`,
		"unknown field":    `{"skills": [], "titles": [], "synonyms": {}}`,
		"empty term":       `{"skills": [""], "titles": []}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeVocabFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDefault_IsNormalized(t *testing.T) {
	v := Default()
	seen := make(map[string]struct{})
	for _, s := range v.Skills {
		_, dup := seen[s]
		assert.False(t, dup, "duplicate skill %q", s)
		seen[s] = struct{}{}
		assert.Equal(t, s, normalizeTerms([]string{s})[0], "skill %q not normalized", s)
	}
}
