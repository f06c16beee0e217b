// Package suggest produces evidence suggestions for already-persisted
// events. Suggestions are written as evidence mentions; the events
// themselves are never modified.
package suggest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

//go:generate moq -out suggester_mock_test.go -pkg suggest . suggester
//go:generate moq -out event_repo_mock_test.go -pkg suggest . eventRepo
//go:generate moq -out user_repo_mock_test.go -pkg suggest . userRepo

type suggester interface {
	SuggestEvidence(ctx context.Context, cc domain.CaseContext, e *domain.Event) ([]domain.EvidenceSuggestion, error)
}

type eventRepo interface {
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*domain.Event, error)
	InsertMentions(ctx context.Context, userID uuid.UUID, mentions []domain.EvidenceMention) error
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// Service runs evidence suggestion for existing events.
type Service struct {
	llm    suggester
	events eventRepo
	users  userRepo
	log    *slog.Logger
}

// NewService creates the suggestion service.
func NewService(log *slog.Logger, llm suggester, events eventRepo, users userRepo) *Service {
	return &Service{
		llm:    llm,
		events: events,
		users:  users,
		log:    log.With("service", "suggest"),
	}
}

// EventSuggestions is the per-event result of one suggestion run.
type EventSuggestions struct {
	EventID     uuid.UUID
	Suggestions []domain.EvidenceSuggestion
}

// SuggestForEvents generates and stores evidence suggestions for the given
// events. Every id must resolve to an event the caller owns; one unknown or
// foreign id fails the whole call before any model spend. Events are
// processed sequentially so a mid-run model failure leaves the earlier
// events' mentions committed.
func (s *Service) SuggestForEvents(ctx context.Context, userID uuid.UUID, eventIDs []uuid.UUID) ([]EventSuggestions, error) {
	if len(eventIDs) == 0 {
		return nil, domain.NewValidationError("event_ids", "at least one event id is required")
	}

	events, err := s.events.ListByIDs(ctx, userID, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(events) != len(eventIDs) {
		return nil, fmt.Errorf("events: %w", domain.ErrNotFound)
	}

	cc := s.caseContext(ctx, userID)

	out := make([]EventSuggestions, 0, len(events))
	for _, e := range events {
		suggestions, err := s.llm.SuggestEvidence(ctx, cc, e)
		if err != nil {
			return out, fmt.Errorf("suggest for event %s: %w", e.ID, err)
		}

		if len(suggestions) > 0 {
			mentions := make([]domain.EvidenceMention, 0, len(suggestions))
			for _, sg := range suggestions {
				mentions = append(mentions, domain.EvidenceMention{
					ID:          uuid.New(),
					EventID:     e.ID,
					UserID:      userID,
					Type:        sg.Type,
					Description: sg.Description,
					Status:      sg.Status,
				})
			}
			if err := s.events.InsertMentions(ctx, userID, mentions); err != nil {
				return out, fmt.Errorf("store mentions for event %s: %w", e.ID, err)
			}
		}

		out = append(out, EventSuggestions{EventID: e.ID, Suggestions: suggestions})
	}

	s.log.InfoContext(ctx, "evidence suggestions stored",
		slog.String("user_id", userID.String()),
		slog.Int("events", len(out)),
	)

	return out, nil
}

func (s *Service) caseContext(ctx context.Context, userID uuid.UUID) domain.CaseContext {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "case context lookup failed, using fallback",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return domain.GenericCaseContext()
	}
	return u.CaseContext()
}
