package capture

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// persist writes the extraction result. Event rows are the spine: their
// insert failing fails the capture. Child rows (participants, mentions,
// action items) are best-effort; a failed child insert is logged and the
// capture still succeeds with the events intact. Evidence links are part of
// the spine because a capture whose evidence silently detached would be
// worse than a failed one.
func (s *Service) persist(
	ctx context.Context,
	userID uuid.UUID,
	res *domain.ExtractionResult,
	linkIDs []uuid.UUID,
	createdEvidence []uuid.UUID,
) (*domain.CaptureResult, error) {
	now := time.Now().UTC()

	rows := make([]domain.Event, 0, len(res.Events)+len(res.Communications))
	for _, e := range res.Events {
		rows = append(rows, domain.Event{
			ID:                 uuid.New(),
			UserID:             userID,
			Type:               e.Type,
			Title:              e.Title,
			Description:        e.Description,
			PrimaryTimestamp:   e.PrimaryTimestamp,
			TimestampPrecision: e.TimestampPrecision,
			DurationMinutes:    e.DurationMinutes,
			Location:           e.Location,
			ChildInvolved:      e.ChildInvolved,
			AgreementViolation: e.AgreementViolation,
			SafetyConcern:      e.SafetyConcern,
			WelfareImpact:      e.WelfareImpact,
			CreatedAt:          now,
		})
	}

	// Communications live in the same table as events under their own type;
	// the split in the result keeps the two id lists separate for clients.
	commStart := len(rows)
	for _, c := range res.Communications {
		rows = append(rows, domain.Event{
			ID:                 uuid.New(),
			UserID:             userID,
			Type:               domain.EventTypeCommunication,
			Title:              communicationTitle(c),
			Description:        c.Summary,
			PrimaryTimestamp:   c.OccurredAt,
			TimestampPrecision: c.Precision,
			ChildInvolved:      c.ChildRelated,
			SafetyConcern:      communicationSafety(c),
			WelfareImpact:      domain.WelfareImpactUnknown,
			CreatedAt:          now,
		})
	}

	if len(rows) == 0 {
		return &domain.CaptureResult{
			EvidenceIDs: createdEvidence,
			Ambiguities: res.Ambiguities,
			Confidence:  res.Confidence,
		}, nil
	}

	ids, err := s.events.InsertEvents(ctx, userID, rows)
	if err != nil {
		return nil, fmt.Errorf("insert events: %w", err)
	}

	s.persistChildren(ctx, userID, res, ids[:commStart])

	if len(linkIDs) > 0 {
		if _, err := s.events.LinkEvidence(ctx, userID, ids, linkIDs); err != nil {
			return nil, fmt.Errorf("link evidence: %w", err)
		}
	}

	actionIDs := s.persistActionItems(ctx, userID, ids[0], res.ActionItems, now)

	return &domain.CaptureResult{
		EventIDs:         ids[:commStart],
		EvidenceIDs:      createdEvidence,
		CommunicationIDs: ids[commStart:],
		ActionItemIDs:    actionIDs,
		Ambiguities:      res.Ambiguities,
		Confidence:       res.Confidence,
	}, nil
}

// persistChildren writes participants and evidence mentions. Failures here
// degrade the record, they do not void it.
func (s *Service) persistChildren(
	ctx context.Context,
	userID uuid.UUID,
	res *domain.ExtractionResult,
	eventIDs []uuid.UUID,
) {
	var participants []domain.Participant
	var mentions []domain.EvidenceMention

	for i, e := range res.Events {
		for _, p := range e.Participants {
			participants = append(participants, domain.Participant{
				ID:      uuid.New(),
				EventID: eventIDs[i],
				UserID:  userID,
				Role:    p.Role,
				Label:   p.Label,
			})
		}
		for _, m := range e.EvidenceMentions {
			mentions = append(mentions, domain.EvidenceMention{
				ID:          uuid.New(),
				EventID:     eventIDs[i],
				UserID:      userID,
				Type:        m.Type,
				Description: m.Description,
				Status:      m.Status,
			})
		}
	}

	// Capture-level suggestions (image describes a photo the user already
	// has, etc.) attach to the first event. A communications-only capture
	// has nowhere to put them.
	if len(eventIDs) > 0 {
		for _, sg := range res.EvidenceSuggestions {
			mentions = append(mentions, domain.EvidenceMention{
				ID:          uuid.New(),
				EventID:     eventIDs[0],
				UserID:      userID,
				Type:        sg.Type,
				Description: sg.Description,
				Status:      sg.Status,
			})
		}
	}

	if len(participants) > 0 {
		if err := s.events.InsertParticipants(ctx, userID, participants); err != nil {
			s.log.WarnContext(ctx, "participants insert failed, events kept",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	if len(mentions) > 0 {
		if err := s.events.InsertMentions(ctx, userID, mentions); err != nil {
			s.log.WarnContext(ctx, "evidence mentions insert failed, events kept",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}

// persistActionItems writes the suggested follow-ups against the first
// event. Best-effort: on failure the ids already written are still reported.
func (s *Service) persistActionItems(
	ctx context.Context,
	userID, eventID uuid.UUID,
	descriptions []string,
	now time.Time,
) []uuid.UUID {
	if len(descriptions) == 0 {
		return nil
	}

	items := make([]domain.ActionItem, 0, len(descriptions))
	ids := make([]uuid.UUID, 0, len(descriptions))
	for _, d := range descriptions {
		item := domain.ActionItem{
			ID:          uuid.New(),
			EventID:     eventID,
			UserID:      userID,
			Description: d,
			CreatedAt:   now,
		}
		items = append(items, item)
		ids = append(ids, item.ID)
	}

	if err := s.events.InsertActionItems(ctx, userID, items); err != nil {
		s.log.WarnContext(ctx, "action items insert failed, events kept",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	return ids
}

func communicationTitle(c domain.ExtractedCommunication) string {
	medium := "Message"
	if c.Medium == domain.SourceTypeEmail {
		medium = "Email"
	}
	if c.Sender != "" {
		return fmt.Sprintf("%s from %s", medium, c.Sender)
	}
	return medium
}

func communicationSafety(c domain.ExtractedCommunication) *bool {
	if !c.Hostile {
		return nil
	}
	v := true
	return &v
}
