// Package usage enforces the per-tier caps on what an account may create.
// The gate is advisory-before-spend: it runs before a capture touches any
// paid collaborator, so a denied request costs nothing.
package usage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/config"
	"github.com/casetrail/casetrail-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg usage . userRepo
//go:generate moq -out event_counter_mock_test.go -pkg usage . eventCounter
//go:generate moq -out evidence_counter_mock_test.go -pkg usage . evidenceCounter
//go:generate moq -out journal_counter_mock_test.go -pkg usage . journalCounter

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type eventCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type evidenceCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type journalCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service answers "may this account do that" questions.
type Service struct {
	users    userRepo
	events   eventCounter
	evidence evidenceCounter
	journal  journalCounter
	limits   config.LimitsConfig
	log      *slog.Logger
}

// NewService creates the usage gate.
func NewService(
	log *slog.Logger,
	limits config.LimitsConfig,
	users userRepo,
	events eventCounter,
	evidence evidenceCounter,
	journal journalCounter,
) *Service {
	return &Service{
		users:    users,
		events:   events,
		evidence: evidence,
		journal:  journal,
		limits:   limits,
		log:      log.With("service", "usage"),
	}
}

// CheckCanCapture reports whether the account may submit another capture.
// Entries counted against the cap are events plus journal entries; the gate
// races concurrent captures by the same user, so the cap can be overshot by
// the number of in-flight requests. That is accepted.
func (s *Service) CheckCanCapture(ctx context.Context, userID uuid.UUID) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	if u.SubscriptionTier.Unlimited() {
		return nil
	}

	eventCount, err := s.events.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	journalCount, err := s.journal.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("count journal entries: %w", err)
	}

	entries := eventCount + journalCount
	if entries >= s.limits.FreeEntries {
		s.log.InfoContext(ctx, "capture denied, entry cap reached",
			slog.String("user_id", userID.String()),
			slog.Int("entries", entries),
		)
		return &domain.LimitReachedError{
			Tier:     u.SubscriptionTier,
			Resource: "entries",
			Limit:    s.limits.FreeEntries,
			Current:  entries,
		}
	}

	return nil
}

// CheckCanAddEvidence reports whether the account may store another evidence
// file.
func (s *Service) CheckCanAddEvidence(ctx context.Context, userID uuid.UUID) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	if u.SubscriptionTier.Unlimited() {
		return nil
	}

	count, err := s.evidence.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("count evidence: %w", err)
	}

	if count >= s.limits.FreeEvidence {
		return &domain.LimitReachedError{
			Tier:     u.SubscriptionTier,
			Resource: "evidence",
			Limit:    s.limits.FreeEvidence,
			Current:  count,
		}
	}

	return nil
}
