// Package queue consumes resume-uploaded events and drives the
// processing pipeline for each one.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/objstore"
	"github.com/jonathan/resume-screener/internal/pipeline"
)

// downloadAttempts bounds retries for transient object-store failures.
const downloadAttempts = 3

// Message is the queue payload emitted when a resume document lands in
// object storage.
type Message struct {
	Bucket      string `json:"bucket"`
	Key         string `json:"key"`
	ContentType string `json:"content_type,omitempty"`
}

// Consumer pulls upload events off an AMQP queue and runs each document
// through the pipeline. Each message is one independent unit of work:
// processed documents are acked, failures are nacked with a single
// requeue before falling through to the queue's dead-letter setup.
type Consumer struct {
	Objects *objstore.Client
	Runner  *pipeline.Runner
	Queue   string
}

// Run consumes the queue with the given number of concurrent workers
// until ctx is cancelled or the connection drops.
func (c *Consumer) Run(ctx context.Context, conn *amqp.Connection, workers int) error {
	if workers < 1 {
		workers = 1
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(c.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", c.Queue, err)
	}

	// Hand each worker at most one unacked message at a time.
	if err := ch.Qos(workers, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	deliveries, err := ch.Consume(c.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %w", c.Queue, err)
	}

	log.Printf("consuming %s with %d workers", c.Queue, workers)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case d, ok := <-deliveries:
					if !ok {
						return nil
					}
					if err := c.handle(ctx, d); err != nil {
						log.Printf("processing %s failed: %v", d.MessageId, err)
						// Requeue once; a redelivered failure goes to the
						// dead-letter exchange instead of looping forever.
						_ = d.Nack(false, !d.Redelivered)
						continue
					}
					_ = d.Ack(false)
				}
			}
		})
	}
	return g.Wait()
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) error {
	var msg Message
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		return fmt.Errorf("malformed message: %w", err)
	}
	if msg.Key == "" {
		return fmt.Errorf("message missing object key")
	}

	data, err := retryWithBackoff(downloadAttempts, func() ([]byte, error) {
		return c.Objects.Download(ctx, msg.Bucket, msg.Key)
	})
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", msg.Key, err)
	}

	text, err := ingestion.ExtractText(contentTypeFor(msg), data)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", msg.Key, err)
	}

	report, err := c.Runner.Process(ctx, pipeline.Document{
		RawText:    text,
		RawTextRef: msg.Key,
	})
	if err != nil {
		return err
	}

	log.Printf("processed %s: candidate %s, %d skills, %d matches",
		msg.Key, report.CandidateID, len(report.Skills), len(report.Matches))
	return nil
}

// contentTypeFor resolves the document type from the message, falling
// back to the object key's extension.
func contentTypeFor(msg Message) string {
	if msg.ContentType != "" {
		return msg.ContentType
	}
	return ingestion.TypeByExtension(msg.Key)
}
