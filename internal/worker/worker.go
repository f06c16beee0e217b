// Package worker consumes capture submissions from the queue and drives each
// one through extraction to completion. Delivery is at-least-once; the job
// status transition acts as the claim, so a redelivered message for a job
// already past pending is acknowledged and skipped.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/config"
	"github.com/casetrail/casetrail-backend/internal/domain"
	"github.com/casetrail/casetrail-backend/internal/jobqueue"
)

//go:generate moq -out capture_runner_mock_test.go -pkg worker . captureRunner
//go:generate moq -out job_repo_mock_test.go -pkg worker . jobRepo
//go:generate moq -out journal_repo_mock_test.go -pkg worker . journalRepo

type captureRunner interface {
	ProcessJournalEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.CaptureResult, json.RawMessage, error)
}

type jobRepo interface {
	MarkProcessing(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	MarkFailed(ctx context.Context, userID, jobID uuid.UUID, reason string) (bool, error)
}

type journalRepo interface {
	Complete(ctx context.Context, userID, entryID uuid.UUID, raw json.RawMessage) (bool, error)
	Cancel(ctx context.Context, userID, entryID uuid.UUID) (bool, error)
}

// Worker owns the message router and the capture handler.
type Worker struct {
	router  *message.Router
	capture captureRunner
	jobs    jobRepo
	journal journalRepo
	log     *slog.Logger
}

// New creates the worker and registers its handler on the given subscriber.
func New(
	log *slog.Logger,
	cfg config.QueueConfig,
	sub message.Subscriber,
	capture captureRunner,
	jobs jobRepo,
	journal journalRepo,
) (*Worker, error) {
	wmLog := watermill.NewSlogLogger(log)

	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: 30 * time.Second,
	}, wmLog)
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	router.AddMiddleware(
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: time.Second,
			MaxInterval:     30 * time.Second,
			Multiplier:      2.0,
			Logger:          wmLog,
		}.Middleware,
	)

	w := &Worker{
		router:  router,
		capture: capture,
		jobs:    jobs,
		journal: journal,
		log:     log.With("service", "worker"),
	}

	router.AddNoPublisherHandler(
		"capture_extraction",
		cfg.CaptureTopic,
		sub,
		w.handleCaptureSubmitted,
	)

	return w, nil
}

// Run blocks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	return w.router.Run(ctx)
}

// Close stops the router and waits for in-flight handlers.
func (w *Worker) Close() error {
	return w.router.Close()
}

// handleCaptureSubmitted runs one submission end to end. Returning an error
// nacks the message for retry; returning nil acks it. Malformed payloads and
// already-claimed jobs are acked, never retried.
func (w *Worker) handleCaptureSubmitted(msg *message.Message) error {
	ctx := msg.Context()

	var payload jobqueue.CaptureSubmitted
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		w.log.ErrorContext(ctx, "dropping malformed message",
			slog.String("message_uuid", msg.UUID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	log := w.log.With(
		slog.String("job_id", payload.JobID.String()),
		slog.String("journal_entry_id", payload.JournalEntryID.String()),
		slog.String("user_id", payload.UserID.String()),
	)

	// Claim the job. A false return means the job already left pending:
	// a duplicate delivery or a concurrent worker got here first.
	claimed, err := w.jobs.MarkProcessing(ctx, payload.UserID, payload.JobID)
	if err != nil {
		return fmt.Errorf("claim job: %w", err)
	}
	if !claimed {
		log.InfoContext(ctx, "job already claimed, skipping")
		return nil
	}

	result, raw, err := w.capture.ProcessJournalEntry(ctx, payload.UserID, payload.JournalEntryID)
	if err != nil {
		w.fail(ctx, log, payload, err)
		return nil
	}

	if _, err := w.journal.Complete(ctx, payload.UserID, payload.JournalEntryID, raw); err != nil {
		// Events are committed but the entry is stuck in processing. Keep
		// the job out of completed so the inconsistency stays visible.
		log.ErrorContext(ctx, "journal completion failed after persist",
			slog.String("error", err.Error()),
		)
		return nil
	}

	if _, err := w.jobs.MarkCompleted(ctx, payload.UserID, payload.JobID); err != nil {
		log.ErrorContext(ctx, "job completion update failed",
			slog.String("error", err.Error()),
		)
		return nil
	}

	log.InfoContext(ctx, "capture job completed",
		slog.Int("events", len(result.EventIDs)),
		slog.Int("communications", len(result.CommunicationIDs)),
	)

	return nil
}

// fail records a terminal failure on both the journal entry and the job.
// Extraction runs once per job; transient upstream errors surface to the
// user as a failed job they can resubmit.
func (w *Worker) fail(ctx context.Context, log *slog.Logger, payload jobqueue.CaptureSubmitted, cause error) {
	log.ErrorContext(ctx, "capture job failed",
		slog.String("error", cause.Error()),
	)

	if _, err := w.journal.Cancel(ctx, payload.UserID, payload.JournalEntryID); err != nil {
		log.ErrorContext(ctx, "journal cancel failed",
			slog.String("error", err.Error()),
		)
	}

	if _, err := w.jobs.MarkFailed(ctx, payload.UserID, payload.JobID, cause.Error()); err != nil {
		log.ErrorContext(ctx, "job failure update failed",
			slog.String("error", err.Error()),
		)
	}
}
