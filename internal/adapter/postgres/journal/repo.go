// Package journal implements the journal entry repository using PostgreSQL.
// A journal entry is the durable record of one async capture submission.
package journal

import (
	"context"
	"encoding/json"
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

const journalColumns = `id, user_id, event_text, reference_date, status,
	extraction_raw, created_at, completed_at`

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new journal entry.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	sql, args, err := qb.Insert("journal_entries").
		Columns("id", "user_id", "event_text", "reference_date", "status", "created_at").
		Values(e.ID, userID, e.EventText, e.ReferenceDate, e.Status, e.CreatedAt).
		Suffix("RETURNING " + journalColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert journal entry: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanEntry(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "journal_entry", e.ID)
	}

	return created, nil
}

// GetByID returns a journal entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	sql, args, err := qb.Select(journalColumns).
		From("journal_entries").
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get journal entry: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	e, err := scanEntry(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "journal_entry", entryID)
	}

	return e, nil
}

// Complete marks a processing entry completed, attaching the raw extraction
// payload for audit and stamping completed_at. Returns false without error
// when the entry was not in processing status.
func (r *Repo) Complete(ctx context.Context, userID, entryID uuid.UUID, raw json.RawMessage) (bool, error) {
	sql, args, err := qb.Update("journal_entries").
		Set("status", domain.JournalStatusCompleted).
		Set("extraction_raw", raw).
		Set("completed_at", time.Now().UTC()).
		Where(sq.Eq{"id": entryID, "user_id": userID, "status": domain.JournalStatusProcessing}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build complete journal entry: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapError(err, "journal_entry", entryID)
	}

	return tag.RowsAffected() > 0, nil
}

// Cancel marks a processing entry cancelled. This is the failed-equivalent
// terminal state for an async capture whose extraction did not succeed.
func (r *Repo) Cancel(ctx context.Context, userID, entryID uuid.UUID) (bool, error) {
	sql, args, err := qb.Update("journal_entries").
		Set("status", domain.JournalStatusCancelled).
		Set("completed_at", time.Now().UTC()).
		Where(sq.Eq{"id": entryID, "user_id": userID, "status": domain.JournalStatusProcessing}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build cancel journal entry: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapError(err, "journal_entry", entryID)
	}

	return tag.RowsAffected() > 0, nil
}

// LinkEvidence associates pre-uploaded evidence with an entry so the worker
// can recover the evidence ids when it picks the job up.
func (r *Repo) LinkEvidence(ctx context.Context, userID, entryID uuid.UUID, evidenceIDs []uuid.UUID) error {
	if len(evidenceIDs) == 0 {
		return nil
	}

	builder := qb.Insert("journal_entry_evidence").
		Columns("journal_entry_id", "evidence_id", "user_id", "position")
	for i, id := range evidenceIDs {
		builder = builder.Values(entryID, id, userID, i)
	}

	sql, args, err := builder.
		Suffix("ON CONFLICT (journal_entry_id, evidence_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build link journal evidence: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "journal_entry_evidence", entryID)
	}

	return nil
}

// EvidenceIDs returns the evidence ids linked to an entry, in submission
// order. The first id is the one the pipeline will mark primary.
func (r *Repo) EvidenceIDs(ctx context.Context, userID, entryID uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := qb.Select("evidence_id").
		From("journal_entry_evidence").
		Where(sq.Eq{"journal_entry_id": entryID, "user_id": userID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal evidence ids: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("journal evidence ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan journal evidence id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal evidence ids: %w", err)
	}

	return ids, nil
}

// CountByUser returns the number of journal entries owned by a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := qb.Select("COUNT(*)").
		From("journal_entries").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count journal entries: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count journal entries: %w", err)
	}

	return count, nil
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

func scanEntry(row rowScanner) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.EventText, &e.ReferenceDate, &e.Status,
		&e.ExtractionRaw, &e.CreatedAt, &e.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
