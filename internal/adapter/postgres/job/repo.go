// Package job implements the async job repository using PostgreSQL.
// Status updates are guarded in SQL so the pending -> processing ->
// (completed|failed) machine stays monotonic even under redelivery.
package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/casetrail/casetrail-backend/internal/adapter/postgres"
	"github.com/casetrail/casetrail-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const jobColumns = `id, user_id, type, status, journal_entry_id, error, created_at, completed_at`

// Repo provides job persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new job repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new job in pending status.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, j *domain.Job) (*domain.Job, error) {
	sql, args, err := qb.Insert("jobs").
		Columns("id", "user_id", "type", "status", "journal_entry_id", "created_at").
		Values(j.ID, userID, j.Type, domain.JobStatusPending, j.JournalEntryID, j.CreatedAt).
		Suffix("RETURNING " + jobColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert job: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanJob(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "job", j.ID)
	}

	return created, nil
}

// GetByID returns a job by primary key.
// Returns domain.ErrNotFound if the job does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, jobID uuid.UUID) (*domain.Job, error) {
	sql, args, err := qb.Select(jobColumns).
		From("jobs").
		Where(sq.Eq{"id": jobID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get job: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	j, err := scanJob(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "job", jobID)
	}

	return j, nil
}

// MarkProcessing advances pending -> processing. Returns false without error
// when the job was not in pending status (redelivered message, or a second
// worker won the claim).
func (r *Repo) MarkProcessing(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	return r.transition(ctx, userID, jobID,
		domain.JobStatusPending, domain.JobStatusProcessing, nil, nil)
}

// MarkCompleted advances processing -> completed and stamps completed_at.
func (r *Repo) MarkCompleted(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	now := time.Now().UTC()
	return r.transition(ctx, userID, jobID,
		domain.JobStatusProcessing, domain.JobStatusCompleted, &now, nil)
}

// MarkFailed advances processing -> failed, stamps completed_at, and records
// the failure reason.
func (r *Repo) MarkFailed(ctx context.Context, userID, jobID uuid.UUID, reason string) (bool, error) {
	now := time.Now().UTC()
	return r.transition(ctx, userID, jobID,
		domain.JobStatusProcessing, domain.JobStatusFailed, &now, &reason)
}

func (r *Repo) transition(ctx context.Context, userID, jobID uuid.UUID,
	from, to domain.JobStatus, completedAt *time.Time, reason *string,
) (bool, error) {
	builder := qb.Update("jobs").
		Set("status", to).
		Where(sq.Eq{"id": jobID, "user_id": userID, "status": from})
	if completedAt != nil {
		builder = builder.Set("completed_at", *completedAt)
	}
	if reason != nil {
		builder = builder.Set("error", *reason)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("build job transition: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapError(err, "job", jobID)
	}

	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID, &j.UserID, &j.Type, &j.Status, &j.JournalEntryID,
		&j.Error, &j.CreatedAt, &j.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
