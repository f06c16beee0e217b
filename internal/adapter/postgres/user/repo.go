// Package user implements the user profile repository using PostgreSQL.
// Account creation and credentials live with the external auth provider;
// this repository only reads the profile and billing tier.
package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/casetrail/casetrail-backend/internal/adapter/postgres"
	"github.com/casetrail/casetrail-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user profile reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user profile by id.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	sql, args, err := qb.Select("id", "display_name", "subscription_tier",
		"case_type", "case_role", "opposing_party", "goals", "created_at").
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	var u domain.User
	err = querier.QueryRow(ctx, sql, args...).Scan(
		&u.ID, &u.DisplayName, &u.SubscriptionTier,
		&u.CaseType, &u.CaseRole, &u.OpposingParty, &u.Goals, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}

	return &u, nil
}
