package domain

import (
	"time"

	"github.com/google/uuid"
)

// Evidence is a stored artifact supporting one or more events. It is created
// either by a direct upload or by the extraction pipeline when the captured
// file itself is the evidence.
type Evidence struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SourceType       EvidenceSourceType
	StoragePath      *string
	OriginalFilename *string
	MimeType         *string
	Summary          string
	Tags             []string
	CreatedAt        time.Time
}

// DisplaySourceType returns the source type as presented at the API
// boundary: recording and other collapse to document. The stored value is
// never altered; this is a presentation mapping only.
func (e *Evidence) DisplaySourceType() EvidenceSourceType {
	return DisplaySourceType(e.SourceType)
}

// DisplaySourceType collapses recording and other to document for display.
func DisplaySourceType(t EvidenceSourceType) EvidenceSourceType {
	switch t {
	case SourceTypeRecording, SourceTypeOther:
		return SourceTypeDocument
	default:
		return t
	}
}

// EventEvidenceLink is the junction row between an event and an evidence
// item. When one capture yields M evidence items and N events, all M×N links
// exist, with the first evidence item primary for each event.
type EventEvidenceLink struct {
	EventID    uuid.UUID
	EvidenceID uuid.UUID
	IsPrimary  bool
}
