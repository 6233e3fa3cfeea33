package main

import (
	"context"
	"log"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/vocab"
)

// openStore returns the configured store and a cleanup func. Without a
// database URL it falls back to the in-memory store, which only makes
// sense for local experiments.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Printf("no database_url configured, using in-memory store (data is not persisted)")
		return store.NewMemory(), func() {}, nil
	}

	pg, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		pg.Close()
		return nil, nil, err
	}
	return pg, pg.Close, nil
}

// newRunner builds the pipeline runner from config. A missing
// vocabulary path falls back to the built-in defaults; a configured but
// invalid vocabulary file is a hard error.
func newRunner(cfg *config.Config, st store.Store) (*pipeline.Runner, error) {
	v, err := vocab.Load(cfg.VocabularyPath)
	if err != nil {
		return nil, err
	}

	return &pipeline.Runner{
		Vocab:      v,
		Store:      st,
		MaxMatches: cfg.MaxMatches,
	}, nil
}
