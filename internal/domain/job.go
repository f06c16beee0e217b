package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobTypeCaptureExtraction is the only job type the worker currently runs.
const JobTypeCaptureExtraction = "capture_extraction"

// Job tracks one asynchronous submission, independent of its business
// content. One job exists per submission; a job can be observed but not
// aborted once dispatched.
type Job struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Type           string
	Status         JobStatus
	JournalEntryID *uuid.UUID
	Error          *string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// JournalEntry is the durable record of one asynchronous capture submission
// and its eventual completion. ExtractionRaw is an opaque audit payload kept
// for debugging and reprocessing; business logic never reads it back.
type JournalEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	EventText     string
	ReferenceDate *time.Time
	Status        JournalEntryStatus
	ExtractionRaw json.RawMessage
	CreatedAt     time.Time
	CompletedAt   *time.Time
}
