// Package config provides configuration loading and validation for the
// screener CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config is the screener configuration. Values can come from a JSON
// file, with environment variables overriding the secret-bearing fields
// so credentials stay out of config files.
type Config struct {
	// Server
	Port int `json:"port,omitempty"`

	// Storage
	DatabaseURL string `json:"database_url,omitempty"`

	// Queue worker
	AMQPURL string `json:"amqp_url,omitempty"`
	Queue   string `json:"queue,omitempty"`
	Workers int    `json:"workers,omitempty"`

	// Object storage (S3-compatible)
	S3Region    string `json:"s3_region,omitempty"`
	S3Endpoint  string `json:"s3_endpoint,omitempty"`
	S3Bucket    string `json:"s3_bucket,omitempty"`
	S3AccessKey string `json:"s3_access_key,omitempty"`
	S3SecretKey string `json:"s3_secret_key,omitempty"`

	// Pipeline
	VocabularyPath string `json:"vocabulary,omitempty"`
	MaxMatches     int    `json:"max_matches,omitempty"`
}

// Defaults used when neither file nor environment provides a value.
const (
	DefaultPort    = 8080
	DefaultQueue   = "resume-uploads"
	DefaultWorkers = 3
)

// Load reads configuration from an optional JSON file, applies
// environment overrides, fills defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setIfEnv(&c.DatabaseURL, "DATABASE_URL")
	setIfEnv(&c.AMQPURL, "AMQP_URL")
	setIfEnv(&c.Queue, "RESUME_QUEUE")
	setIfEnv(&c.S3Region, "S3_REGION")
	setIfEnv(&c.S3Endpoint, "S3_ENDPOINT")
	setIfEnv(&c.S3Bucket, "RESUME_BUCKET")
	setIfEnv(&c.S3AccessKey, "S3_ACCESS_KEY")
	setIfEnv(&c.S3SecretKey, "S3_SECRET_KEY")
	setIfEnv(&c.VocabularyPath, "VOCABULARY_PATH")

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Queue == "" {
		c.Queue = DefaultQueue
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
}

// Validate checks numeric ranges and referenced files.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 1-65535, got %d", c.Port)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config error: 'workers' must be positive, got %d", c.Workers)
	}
	if c.MaxMatches < 0 {
		return fmt.Errorf("config error: 'max_matches' must be non-negative, got %d", c.MaxMatches)
	}
	if c.VocabularyPath != "" {
		if _, err := os.Stat(c.VocabularyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyPath)
		}
	}
	return nil
}

func setIfEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
