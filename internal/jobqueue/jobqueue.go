// Package jobqueue carries capture submissions from the API to the worker.
// The transport is an in-process Pub/Sub; the message contract is defined
// here so both sides share one payload shape.
package jobqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/config"
)

// CaptureSubmitted announces one accepted asynchronous capture. The payload
// carries ids only; the worker reloads state from the database so a redelivered
// message after a crash observes current job status, not stale content.
type CaptureSubmitted struct {
	JobID          uuid.UUID `json:"job_id"`
	JournalEntryID uuid.UUID `json:"journal_entry_id"`
	UserID         uuid.UUID `json:"user_id"`
}

// NewPubSub creates the in-process queue shared by publisher and worker.
func NewPubSub(cfg config.QueueConfig, log *slog.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: cfg.BufferSize,
		Persistent:          cfg.WorkerPersist,
	}, watermill.NewSlogLogger(log))
}

// Publisher publishes capture submissions to the queue.
type Publisher struct {
	pub   message.Publisher
	topic string
}

// NewPublisher wraps a Pub/Sub publisher with the capture topic.
func NewPublisher(pub message.Publisher, cfg config.QueueConfig) *Publisher {
	return &Publisher{pub: pub, topic: cfg.CaptureTopic}
}

// PublishCaptureSubmitted enqueues one submission.
func (p *Publisher) PublishCaptureSubmitted(ctx context.Context, payload CaptureSubmitted) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), b)
	msg.SetContext(ctx)

	if err := p.pub.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}
