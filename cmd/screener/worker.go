package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/objstore"
	"github.com/jonathan/resume-screener/internal/queue"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume resume-upload events from the queue and process them",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.AMQPURL == "" {
			return fmt.Errorf("amqp_url is required for the worker (config file or AMQP_URL)")
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		runner, err := newRunner(cfg, st)
		if err != nil {
			return err
		}

		objects, err := objstore.New(ctx, objstore.Config{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
		})
		if err != nil {
			return err
		}

		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			return fmt.Errorf("failed to connect to AMQP broker: %w", err)
		}
		defer conn.Close()

		consumer := &queue.Consumer{
			Objects: objects,
			Runner:  runner,
			Queue:   cfg.Queue,
		}

		err = consumer.Run(ctx, conn, cfg.Workers)
		if err == context.Canceled {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
