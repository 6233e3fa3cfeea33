package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultQueue, cfg.Queue)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, 0, cfg.MaxMatches)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 9090,
		"queue": "resumes",
		"max_matches": 10
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "resumes", cfg.Queue)
	assert.Equal(t, 10, cfg.MaxMatches)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_url": "postgres://file"}`), 0o644))

	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("PORT", "9999")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, 9999, cfg.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(*Config) {}, false},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
		{"negative max matches", func(c *Config) { c.MaxMatches = -1 }, true},
		{"vocabulary file missing", func(c *Config) { c.VocabularyPath = "/nonexistent/vocab.json" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
