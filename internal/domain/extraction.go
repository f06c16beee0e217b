package domain

import (
	"encoding/json"
	"time"
)

// ExtractionResult is the schema-validated output of one extraction call.
// Any model output that does not validate against this shape is rejected as
// an upstream failure, never coerced.
type ExtractionResult struct {
	Events              []ExtractedEvent
	Communications      []ExtractedCommunication
	EvidenceSuggestions []EvidenceSuggestion
	ActionItems         []string
	Ambiguities         []string
	Confidence          float64
	TokenUsage          TokenUsage
	// Raw is the opaque audit payload: the exact JSON the model produced.
	// It is stored alongside the normalized fields for debugging and
	// reprocessing and is never read back into business logic.
	Raw json.RawMessage
}

// ExtractedEvent is one event candidate produced by the model, already
// mapped onto domain enums with the temporal policy applied.
type ExtractedEvent struct {
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
	Participants       []ExtractedParticipant
	EvidenceMentions   []ExtractedMention
}

// ExtractedParticipant is a participant label within an extracted event.
type ExtractedParticipant struct {
	Role  ParticipantRole
	Label string
}

// ExtractedMention is an evidence mention within an extracted event.
type ExtractedMention struct {
	Type        EvidenceSourceType
	Description string
	Status      MentionStatus
}

// ExtractedCommunication is the communication-thread variant produced when
// the capture input is an image of a text or email exchange.
type ExtractedCommunication struct {
	Medium       EvidenceSourceType // text or email
	Sender       string
	Summary      string
	OccurredAt   *time.Time
	Precision    TimestampPrecision
	Hostile      bool
	ChildRelated bool
}

// EvidenceSuggestion describes evidence the model believes exists or should
// be gathered for an event.
type EvidenceSuggestion struct {
	Type        EvidenceSourceType
	Description string
	Status      MentionStatus
}

// TokenUsage echoes the model's token accounting back to the caller.
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
}

// CaseContext is the user and case backdrop injected into extraction
// requests so pronouns resolve consistently and relevance flags are judged
// against the right situation.
type CaseContext struct {
	DisplayName   string
	CaseType      string
	Role          string
	OpposingParty string
	Goals         string
}

// GenericCaseContext is the fallback used when context lookup fails;
// extraction proceeds rather than failing the capture.
func GenericCaseContext() CaseContext {
	return CaseContext{
		DisplayName: "the user",
		CaseType:    "family custody matter",
		Role:        "parent",
	}
}
