package capture

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// ProcessJournalEntry runs the extraction pipeline for one submitted journal
// entry. The worker is the only caller; the usage gate already ran at
// submission, so it is not consulted again. The raw extraction JSON is
// returned alongside the result so the worker can stamp it onto the entry.
func (s *Service) ProcessJournalEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.CaptureResult, json.RawMessage, error) {
	entry, err := s.journal.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, nil, fmt.Errorf("load journal entry: %w", err)
	}

	evidenceIDs, err := s.journal.EvidenceIDs(ctx, userID, entryID)
	if err != nil {
		return nil, nil, fmt.Errorf("load journal evidence: %w", err)
	}

	in := domain.CaptureInput{
		NarrativeText: entry.EventText,
		ReferenceDate: entry.ReferenceDate,
		EvidenceIDs:   evidenceIDs,
	}
	if err := s.validateInput(&in); err != nil {
		return nil, nil, err
	}

	return s.run(ctx, userID, in)
}
