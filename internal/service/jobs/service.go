// Package jobs accepts asynchronous capture submissions and exposes their
// status. Submission writes the durable journal entry and job rows first and
// publishes to the queue last, so an accepted submission is always
// observable even if the process dies before the worker picks it up.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
	"github.com/casetrail/casetrail-backend/internal/jobqueue"
	"github.com/casetrail/casetrail-backend/pkg/ctxutil"
)

//go:generate moq -out usage_gate_mock_test.go -pkg jobs . usageGate
//go:generate moq -out journal_repo_mock_test.go -pkg jobs . journalRepo
//go:generate moq -out job_repo_mock_test.go -pkg jobs . jobRepo
//go:generate moq -out evidence_repo_mock_test.go -pkg jobs . evidenceRepo
//go:generate moq -out publisher_mock_test.go -pkg jobs . publisher
//go:generate moq -out tx_manager_mock_test.go -pkg jobs . txManager

type usageGate interface {
	CheckCanCapture(ctx context.Context, userID uuid.UUID) error
}

type journalRepo interface {
	Create(ctx context.Context, userID uuid.UUID, e *domain.JournalEntry) (*domain.JournalEntry, error)
	LinkEvidence(ctx context.Context, userID, entryID uuid.UUID, evidenceIDs []uuid.UUID) error
}

type jobRepo interface {
	Create(ctx context.Context, userID uuid.UUID, j *domain.Job) (*domain.Job, error)
	GetByID(ctx context.Context, userID, jobID uuid.UUID) (*domain.Job, error)
}

type evidenceRepo interface {
	ResolveOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}

type publisher interface {
	PublishCaptureSubmitted(ctx context.Context, payload jobqueue.CaptureSubmitted) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service accepts submissions and answers status queries.
type Service struct {
	gate     usageGate
	journal  journalRepo
	jobs     jobRepo
	evidence evidenceRepo
	queue    publisher
	tx       txManager
	log      *slog.Logger
}

// NewService creates the jobs service.
func NewService(
	log *slog.Logger,
	gate usageGate,
	journal journalRepo,
	jobs jobRepo,
	evidence evidenceRepo,
	queue publisher,
	tx txManager,
) *Service {
	return &Service{
		gate:     gate,
		journal:  journal,
		jobs:     jobs,
		evidence: evidence,
		queue:    queue,
		tx:       tx,
		log:      log.With("service", "jobs"),
	}
}

// Submit validates and records one asynchronous capture, then enqueues it.
// The usage gate runs here, at acceptance, not in the worker: a submission
// that would exceed the cap is rejected before anything is written.
func (s *Service) Submit(ctx context.Context, entry domain.JournalEntry, evidenceIDs []uuid.UUID) (*domain.Job, *domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}

	if entry.EventText == "" {
		return nil, nil, domain.NewValidationError("event_text", "event text is required")
	}

	if err := s.gate.CheckCanCapture(ctx, userID); err != nil {
		return nil, nil, err
	}

	if len(evidenceIDs) > 0 {
		owned, err := s.evidence.ResolveOwned(ctx, userID, evidenceIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve evidence: %w", err)
		}
		if len(owned) != len(evidenceIDs) {
			return nil, nil, fmt.Errorf("evidence: %w", domain.ErrNotFound)
		}
	}

	now := time.Now().UTC()
	entry.ID = uuid.New()
	entry.UserID = userID
	entry.Status = domain.JournalStatusProcessing
	entry.CreatedAt = now

	// Entry, evidence links, and job commit as one unit: a visible job
	// always has its journal entry.
	var created *domain.JournalEntry
	var job *domain.Job
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.journal.Create(ctx, userID, &entry)
		if err != nil {
			return fmt.Errorf("create journal entry: %w", err)
		}

		if len(evidenceIDs) > 0 {
			if err := s.journal.LinkEvidence(ctx, userID, created.ID, evidenceIDs); err != nil {
				return fmt.Errorf("link journal evidence: %w", err)
			}
		}

		job, err = s.jobs.Create(ctx, userID, &domain.Job{
			ID:             uuid.New(),
			UserID:         userID,
			Type:           domain.JobTypeCaptureExtraction,
			Status:         domain.JobStatusPending,
			JournalEntryID: &created.ID,
			CreatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("create job: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if err := s.queue.PublishCaptureSubmitted(ctx, jobqueue.CaptureSubmitted{
		JobID:          job.ID,
		JournalEntryID: created.ID,
		UserID:         userID,
	}); err != nil {
		// The rows exist; the job stays pending and is visible to the user.
		// A requeue sweep or resubmission can pick it up.
		s.log.ErrorContext(ctx, "publish failed, job left pending",
			slog.String("job_id", job.ID.String()),
			slog.String("error", err.Error()),
		)
		return nil, nil, fmt.Errorf("enqueue job: %w", err)
	}

	s.log.InfoContext(ctx, "capture submitted",
		slog.String("user_id", userID.String()),
		slog.String("job_id", job.ID.String()),
		slog.String("journal_entry_id", created.ID.String()),
	)

	return job, created, nil
}

// GetJob returns one job the caller owns.
func (s *Service) GetJob(ctx context.Context, jobID uuid.UUID) (*domain.Job, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.jobs.GetByID(ctx, userID, jobID)
}
