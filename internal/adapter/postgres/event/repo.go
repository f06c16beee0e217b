// Package event implements the timeline event repository using PostgreSQL.
// It provides the two-phase insert used by the capture pipeline: events
// first, then the child rows that need the parent ids.
package event

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

const eventColumns = `id, user_id, type, title, description, primary_timestamp,
	timestamp_precision, duration_minutes, location, child_involved,
	agreement_violation, safety_concern, welfare_impact, created_at`

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Phase one: parent rows
// ---------------------------------------------------------------------------

// InsertEvents inserts one row per event and returns the assigned ids in
// input order. This is the only fatal step of the capture write path; the
// child inserts below are best-effort.
func (r *Repo) InsertEvents(ctx context.Context, userID uuid.UUID, events []domain.Event) ([]uuid.UUID, error) {
	if len(events) == 0 {
		return nil, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	ids := make([]uuid.UUID, 0, len(events))

	for _, e := range events {
		sql, args, err := qb.Insert("events").
			Columns("id", "user_id", "type", "title", "description",
				"primary_timestamp", "timestamp_precision", "duration_minutes",
				"location", "child_involved", "agreement_violation",
				"safety_concern", "welfare_impact", "created_at").
			Values(e.ID, userID, e.Type, e.Title, e.Description,
				e.PrimaryTimestamp, e.TimestampPrecision, e.DurationMinutes,
				e.Location, e.ChildInvolved, e.AgreementViolation,
				e.SafetyConcern, e.WelfareImpact, e.CreatedAt).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build insert event: %w", err)
		}

		var id uuid.UUID
		if err := querier.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return nil, mapError(err, "event", e.ID)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Phase two: child rows (need parent ids from phase one)
// ---------------------------------------------------------------------------

// InsertParticipants inserts participant labels for already-committed events.
func (r *Repo) InsertParticipants(ctx context.Context, userID uuid.UUID, participants []domain.Participant) error {
	if len(participants) == 0 {
		return nil
	}

	builder := qb.Insert("event_participants").
		Columns("id", "event_id", "user_id", "role", "label")
	for _, p := range participants {
		builder = builder.Values(p.ID, p.EventID, userID, p.Role, p.Label)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert participants: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "event_participant", participants[0].EventID)
	}

	return nil
}

// InsertMentions inserts evidence mentions for already-committed events.
func (r *Repo) InsertMentions(ctx context.Context, userID uuid.UUID, mentions []domain.EvidenceMention) error {
	if len(mentions) == 0 {
		return nil
	}

	builder := qb.Insert("evidence_mentions").
		Columns("id", "event_id", "user_id", "type", "description", "status")
	for _, m := range mentions {
		builder = builder.Values(m.ID, m.EventID, userID, m.Type, m.Description, m.Status)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert mentions: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "evidence_mention", mentions[0].EventID)
	}

	return nil
}

// InsertActionItems inserts follow-up suggestions linked to an event.
func (r *Repo) InsertActionItems(ctx context.Context, userID uuid.UUID, items []domain.ActionItem) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.Insert("action_items").
		Columns("id", "event_id", "user_id", "description", "done", "created_at")
	for _, it := range items {
		builder = builder.Values(it.ID, it.EventID, userID, it.Description, it.Done, it.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert action items: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "action_item", items[0].EventID)
	}

	return nil
}

// LinkEvidence inserts the full cross-product of event x evidence junction
// rows for one capture. The first evidence id is marked primary for every
// event: one capture's evidence is shared by all events it produced.
// Idempotent: re-running a crashed job hits ON CONFLICT DO NOTHING.
// Evidence ids must already be resolved as owned by userID.
func (r *Repo) LinkEvidence(ctx context.Context, userID uuid.UUID, eventIDs, evidenceIDs []uuid.UUID) (int, error) {
	if len(eventIDs) == 0 || len(evidenceIDs) == 0 {
		return 0, nil
	}

	builder := qb.Insert("event_evidence").
		Columns("event_id", "evidence_id", "user_id", "is_primary")
	for _, eventID := range eventIDs {
		for i, evidenceID := range evidenceIDs {
			builder = builder.Values(eventID, evidenceID, userID, i == 0)
		}
	}

	sql, args, err := builder.Suffix("ON CONFLICT (event_id, evidence_id) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build link evidence: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return 0, mapError(err, "event_evidence", eventIDs[0])
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an event by primary key.
// Returns domain.ErrNotFound if the event does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error) {
	sql, args, err := qb.Select(eventColumns).
		From("events").
		Where(sq.Eq{"id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	e, err := scanEvent(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "event", eventID)
	}

	return e, nil
}

// ListByIDs returns the subset of the given events that exist and belong to
// userID, in no particular order. Missing or foreign ids are simply absent
// from the result; the caller decides whether that is an error.
func (r *Repo) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := qb.Select(eventColumns).
		From("events").
		Where(sq.Eq{"id": ids, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

// CountByUser returns the number of events owned by a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := qb.Select("COUNT(*)").
		From("events").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count events: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
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

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
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

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.UserID, &e.Type, &e.Title, &e.Description,
		&e.PrimaryTimestamp, &e.TimestampPrecision, &e.DurationMinutes,
		&e.Location, &e.ChildInvolved, &e.AgreementViolation,
		&e.SafetyConcern, &e.WelfareImpact, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
