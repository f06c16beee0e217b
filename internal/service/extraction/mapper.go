package extraction

import (
	"strings"
	"time"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// mapPayload converts a validated wire payload into the domain result,
// applying the temporal policy and field defaulting rules. Defaults never
// promote "unknown" to a concrete value: absent welfare impact stays
// unknown, absent tri-state flags stay nil.
//
// userHints, when non-empty, come from the user's explicit reference time
// description and override the model's per-event hints.
func mapPayload(p *wirePayload, reference time.Time, userHints TimeHints) *domain.ExtractionResult {
	res := &domain.ExtractionResult{
		ActionItems: p.ActionItems,
		Ambiguities: p.Metadata.Ambiguities,
		Confidence:  p.Metadata.Confidence,
	}

	for _, we := range p.Events {
		res.Events = append(res.Events, mapEvent(we, reference, userHints))
	}

	for _, wc := range p.Communications {
		hints := TimeHints{Date: wc.Date, ClockTime: wc.ClockTime}
		if !userHints.empty() {
			hints = userHints
		}
		ts, precision := ResolveTimestamp(reference, hints)
		res.Communications = append(res.Communications, domain.ExtractedCommunication{
			Medium:       domain.EvidenceSourceType(wc.Medium),
			Sender:       wc.Sender,
			Summary:      wc.Summary,
			OccurredAt:   ts,
			Precision:    precision,
			Hostile:      wc.Hostile,
			ChildRelated: wc.ChildRelated,
		})
	}

	for _, ws := range p.EvidenceSuggestions {
		res.EvidenceSuggestions = append(res.EvidenceSuggestions, domain.EvidenceSuggestion{
			Type:        domain.EvidenceSourceType(ws.Type),
			Description: ws.Description,
			Status:      domain.MentionStatus(ws.Status),
		})
	}

	return res
}

func mapEvent(we wireEvent, reference time.Time, userHints TimeHints) domain.ExtractedEvent {
	hints := TimeHints{Date: we.Date, ClockTime: we.ClockTime, DayPart: we.DayPart}
	if !userHints.empty() {
		hints = userHints
	}
	ts, precision := ResolveTimestamp(reference, hints)

	welfare := domain.WelfareImpact(we.WelfareImpact)
	if we.WelfareImpact == "" {
		welfare = domain.WelfareImpactUnknown
	}

	e := domain.ExtractedEvent{
		Type:               domain.EventType(we.Type),
		Title:              strings.TrimSpace(we.Title),
		Description:        strings.TrimSpace(we.Description),
		PrimaryTimestamp:   ts,
		TimestampPrecision: precision,
		DurationMinutes:    we.DurationMinutes,
		ChildInvolved:      we.ChildInvolved,
		AgreementViolation: we.AgreementViolation,
		SafetyConcern:      we.SafetyConcern,
		WelfareImpact:      welfare,
	}

	if loc := strings.TrimSpace(we.Location); loc != "" {
		e.Location = &loc
	}

	seen := make(map[string]struct{}, len(we.Participants))
	for _, wp := range we.Participants {
		// Natural dedupe: same role+label appearing twice collapses.
		key := wp.Role + "\x00" + strings.ToLower(strings.TrimSpace(wp.Label))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		e.Participants = append(e.Participants, domain.ExtractedParticipant{
			Role:  domain.ParticipantRole(wp.Role),
			Label: strings.TrimSpace(wp.Label),
		})
	}

	for _, wm := range we.EvidenceMentions {
		e.EvidenceMentions = append(e.EvidenceMentions, domain.ExtractedMention{
			Type:        domain.EvidenceSourceType(wm.Type),
			Description: wm.Description,
			Status:      domain.MentionStatus(wm.Status),
		})
	}

	return e
}
