// Package evidence implements the evidence repository using PostgreSQL.
package evidence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/casetrail/casetrail-backend/internal/adapter/postgres"
	"github.com/casetrail/casetrail-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const evidenceColumns = `id, user_id, source_type, storage_path,
	original_filename, mime_type, summary, tags, created_at`

// Repo provides evidence persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new evidence repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new evidence row and returns the persisted value.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, ev *domain.Evidence) (*domain.Evidence, error) {
	sql, args, err := qb.Insert("evidence").
		Columns("id", "user_id", "source_type", "storage_path",
			"original_filename", "mime_type", "summary", "tags", "created_at").
		Values(ev.ID, userID, ev.SourceType, ev.StoragePath,
			ev.OriginalFilename, ev.MimeType, ev.Summary, ev.Tags, ev.CreatedAt).
		Suffix("RETURNING " + evidenceColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert evidence: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanEvidence(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "evidence", ev.ID)
	}

	return created, nil
}

// GetByID returns an evidence row by primary key.
// Returns domain.ErrNotFound if the row does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, evidenceID uuid.UUID) (*domain.Evidence, error) {
	sql, args, err := qb.Select(evidenceColumns).
		From("evidence").
		Where(sq.Eq{"id": evidenceID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get evidence: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	ev, err := scanEvidence(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "evidence", evidenceID)
	}

	return ev, nil
}

// ResolveOwned returns, in input order, the subset of ids that exist and
// belong to userID. The capture pipeline uses this before linking so a
// foreign id can never produce a junction row.
func (r *Repo) ResolveOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := qb.Select("id").
		From("evidence").
		Where(sq.Eq{"id": ids, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve evidence: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("resolve evidence: %w", err)
	}
	defer rows.Close()

	owned := make(map[uuid.UUID]struct{}, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan evidence id: %w", err)
		}
		owned[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve evidence: %w", err)
	}

	// Preserve the caller's order: the first supplied id becomes primary.
	result := make([]uuid.UUID, 0, len(owned))
	for _, id := range ids {
		if _, ok := owned[id]; ok {
			result = append(result, id)
		}
	}

	return result, nil
}

// CountByUser returns the number of evidence rows owned by a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := qb.Select("COUNT(*)").
		From("evidence").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count evidence: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count evidence: %w", err)
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

func scanEvidence(row rowScanner) (*domain.Evidence, error) {
	var ev domain.Evidence
	err := row.Scan(
		&ev.ID, &ev.UserID, &ev.SourceType, &ev.StoragePath,
		&ev.OriginalFilename, &ev.MimeType, &ev.Summary, &ev.Tags, &ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}
