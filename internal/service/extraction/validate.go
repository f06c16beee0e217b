package extraction

import (
	"fmt"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// validatePayload checks the parsed model output against the fixed schema.
// Absent optional fields are allowed (defaulting happens in the mapper);
// present-but-invalid enum values are schema violations and fail the whole
// extraction. Nothing is coerced.
func validatePayload(p *wirePayload) error {
	for i, e := range p.Events {
		if err := validateEvent(i, e); err != nil {
			return err
		}
	}

	for i, c := range p.Communications {
		medium := domain.EvidenceSourceType(c.Medium)
		if medium != domain.SourceTypeText && medium != domain.SourceTypeEmail {
			return fmt.Errorf("communication %d has invalid medium %q", i, c.Medium)
		}
		if c.Summary == "" {
			return fmt.Errorf("communication %d has empty summary", i)
		}
	}

	for i, s := range p.EvidenceSuggestions {
		if err := validateSuggestion(i, s); err != nil {
			return err
		}
	}

	if p.Metadata.Confidence < 0 || p.Metadata.Confidence > 1 {
		return fmt.Errorf("metadata confidence %v out of range", p.Metadata.Confidence)
	}

	return nil
}

func validateEvent(i int, e wireEvent) error {
	if !domain.EventType(e.Type).IsValid() {
		return fmt.Errorf("event %d has invalid type %q", i, e.Type)
	}
	if e.Title == "" {
		return fmt.Errorf("event %d has empty title", i)
	}
	if e.Description == "" {
		return fmt.Errorf("event %d has empty description", i)
	}
	if e.WelfareImpact != "" && !domain.WelfareImpact(e.WelfareImpact).IsValid() {
		return fmt.Errorf("event %d has invalid welfare_impact %q", i, e.WelfareImpact)
	}
	if e.DurationMinutes != nil && *e.DurationMinutes < 0 {
		return fmt.Errorf("event %d has negative duration", i)
	}

	for j, pt := range e.Participants {
		if !domain.ParticipantRole(pt.Role).IsValid() {
			return fmt.Errorf("event %d participant %d has invalid role %q", i, j, pt.Role)
		}
		if pt.Label == "" {
			return fmt.Errorf("event %d participant %d has empty label", i, j)
		}
	}

	for j, m := range e.EvidenceMentions {
		if !domain.EvidenceSourceType(m.Type).IsValid() {
			return fmt.Errorf("event %d mention %d has invalid type %q", i, j, m.Type)
		}
		if !domain.MentionStatus(m.Status).IsValid() {
			return fmt.Errorf("event %d mention %d has invalid status %q", i, j, m.Status)
		}
		if m.Description == "" {
			return fmt.Errorf("event %d mention %d has empty description", i, j)
		}
	}

	return nil
}

func validateSuggestion(i int, s wireSuggestion) error {
	if !domain.EvidenceSourceType(s.Type).IsValid() {
		return fmt.Errorf("suggestion %d has invalid type %q", i, s.Type)
	}
	if !domain.MentionStatus(s.Status).IsValid() {
		return fmt.Errorf("suggestion %d has invalid status %q", i, s.Status)
	}
	if s.Description == "" {
		return fmt.Errorf("suggestion %d has empty description", i)
	}
	return nil
}
