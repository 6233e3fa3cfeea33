package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		st, closeStore, err := openStore(context.Background(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		runner, err := newRunner(cfg, st)
		if err != nil {
			return err
		}

		return server.New(server.Config{Port: cfg.Port}, st, runner).Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
