package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is one structured timeline entry derived from captured narrative or
// media. Events are created by the persistence layer from extraction output,
// never directly by a client, and are immutable except for linking.
//
// Invariant: PrimaryTimestamp is nil whenever TimestampPrecision is
// PrecisionUnknown. The inverse does not hold: a nil timestamp may carry any
// precision the extraction reported.
type Event struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Type               EventType
	Title              string
	Description        string
	PrimaryTimestamp   *time.Time
	TimestampPrecision TimestampPrecision
	DurationMinutes    *int
	Location           *string
	ChildInvolved      bool
	AgreementViolation *bool
	SafetyConcern      *bool
	WelfareImpact      WelfareImpact
	CreatedAt          time.Time
}

// Participant is a role-tagged label attached to an event.
type Participant struct {
	ID      uuid.UUID
	EventID uuid.UUID
	UserID  uuid.UUID
	Role    ParticipantRole
	Label   string
}

// EvidenceMention is a claim, attached to an event, that some evidence
// exists or is needed. It is descriptive metadata, not a file.
type EvidenceMention struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	UserID      uuid.UUID
	Type        EvidenceSourceType
	Description string
	Status      MentionStatus
}

// ActionItem is a suggested follow-up derived from a capture, linked to the
// first event the capture produced.
type ActionItem struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	UserID      uuid.UUID
	Description string
	Done        bool
	CreatedAt   time.Time
}
