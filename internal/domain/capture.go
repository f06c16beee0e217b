package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaptureInput is one capture submission. It is transient: created by the
// client, consumed once by the pipeline, never persisted as its own row.
// At least one of NarrativeText, Audio, or Images must be present.
type CaptureInput struct {
	NarrativeText            string
	Audio                    *MediaBlob
	Images                   []MediaBlob
	UserAnnotation           string
	ReferenceDate            *time.Time
	ReferenceTimeDescription string
	EvidenceIDs              []uuid.UUID
}

// MediaBlob is an in-memory file plus the metadata the pipeline needs.
type MediaBlob struct {
	Data     []byte
	MimeType string
	Filename string
}

// CaptureResult reports what one capture committed.
type CaptureResult struct {
	EventIDs         []uuid.UUID
	EvidenceIDs      []uuid.UUID
	CommunicationIDs []uuid.UUID
	ActionItemIDs    []uuid.UUID
	Ambiguities      []string
	Confidence       float64
}
