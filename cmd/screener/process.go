package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

var processJobsPath string

var processCmd = &cobra.Command{
	Use:   "process <resume-file>",
	Short: "Run one resume document through the pipeline",
	Long: "Process extracts a candidate profile from a local resume file " +
		"(.pdf, .docx or plain text), matches it against the job catalog " +
		"and persists the result.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		ctx := context.Background()
		st, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		// Optional catalog seed for databaseless runs.
		if processJobsPath != "" {
			jobs, err := loadJobs(processJobsPath)
			if err != nil {
				return err
			}
			for _, job := range jobs {
				if err := st.UpsertJob(ctx, job); err != nil {
					return err
				}
			}
		}

		runner, err := newRunner(cfg, st)
		if err != nil {
			return err
		}

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		text, err := ingestion.ExtractText(ingestion.TypeByExtension(path), data)
		if err != nil {
			return err
		}

		report, err := runner.Process(ctx, pipeline.Document{
			RawText:    text,
			RawTextRef: path,
		})
		if err != nil {
			return err
		}

		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(&report.CandidateProfile)
		printer.PrintMatches(report.Matches)
		return nil
	},
}

func loadJobs(path string) ([]types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}
	var jobs []types.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse jobs file %s: %w", path, err)
	}
	return jobs, nil
}

func init() {
	processCmd.Flags().StringVar(&processJobsPath, "jobs", "", "JSON file of job postings to seed the catalog with")
	rootCmd.AddCommand(processCmd)
}
