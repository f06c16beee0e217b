package domain

// EventType classifies a timeline event.
type EventType string

const (
	EventTypeIncident      EventType = "incident"
	EventTypePositive      EventType = "positive"
	EventTypeMedical       EventType = "medical"
	EventTypeSchool        EventType = "school"
	EventTypeCommunication EventType = "communication"
	EventTypeLegal         EventType = "legal"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeIncident, EventTypePositive, EventTypeMedical,
		EventTypeSchool, EventTypeCommunication, EventTypeLegal:
		return true
	}
	return false
}

// TimestampPrecision states how much of an event's primary timestamp can be
// trusted. PrecisionUnknown requires a nil timestamp.
type TimestampPrecision string

const (
	PrecisionExact       TimestampPrecision = "exact"
	PrecisionDay         TimestampPrecision = "day"
	PrecisionApproximate TimestampPrecision = "approximate"
	PrecisionUnknown     TimestampPrecision = "unknown"
)

func (p TimestampPrecision) String() string { return string(p) }

func (p TimestampPrecision) IsValid() bool {
	switch p {
	case PrecisionExact, PrecisionDay, PrecisionApproximate, PrecisionUnknown:
		return true
	}
	return false
}

// WelfareImpact is the severity tag attached to an event.
type WelfareImpact string

const (
	WelfareImpactNone     WelfareImpact = "none"
	WelfareImpactMild     WelfareImpact = "mild"
	WelfareImpactModerate WelfareImpact = "moderate"
	WelfareImpactSevere   WelfareImpact = "severe"
	WelfareImpactUnknown  WelfareImpact = "unknown"
)

func (w WelfareImpact) String() string { return string(w) }

func (w WelfareImpact) IsValid() bool {
	switch w {
	case WelfareImpactNone, WelfareImpactMild, WelfareImpactModerate,
		WelfareImpactSevere, WelfareImpactUnknown:
		return true
	}
	return false
}

// ParticipantRole tags a participant label on an event.
type ParticipantRole string

const (
	RolePrimary      ParticipantRole = "primary"
	RoleWitness      ParticipantRole = "witness"
	RoleProfessional ParticipantRole = "professional"
)

func (r ParticipantRole) String() string { return string(r) }

func (r ParticipantRole) IsValid() bool {
	switch r {
	case RolePrimary, RoleWitness, RoleProfessional:
		return true
	}
	return false
}

// EvidenceSourceType classifies an evidence artifact or mention.
// recording and other are collapsed to document for display only;
// see Evidence.DisplaySourceType.
type EvidenceSourceType string

const (
	SourceTypeText      EvidenceSourceType = "text"
	SourceTypeEmail     EvidenceSourceType = "email"
	SourceTypePhoto     EvidenceSourceType = "photo"
	SourceTypeDocument  EvidenceSourceType = "document"
	SourceTypeRecording EvidenceSourceType = "recording"
	SourceTypeOther     EvidenceSourceType = "other"
)

func (s EvidenceSourceType) String() string { return string(s) }

func (s EvidenceSourceType) IsValid() bool {
	switch s {
	case SourceTypeText, SourceTypeEmail, SourceTypePhoto,
		SourceTypeDocument, SourceTypeRecording, SourceTypeOther:
		return true
	}
	return false
}

// MentionStatus states whether a mentioned piece of evidence exists yet.
type MentionStatus string

const (
	MentionStatusHave         MentionStatus = "have"
	MentionStatusNeedToGet    MentionStatus = "need_to_get"
	MentionStatusNeedToCreate MentionStatus = "need_to_create"
)

func (s MentionStatus) String() string { return string(s) }

func (s MentionStatus) IsValid() bool {
	switch s {
	case MentionStatusHave, MentionStatusNeedToGet, MentionStatusNeedToCreate:
		return true
	}
	return false
}

// JobStatus is the async processing state of a job.
// Transitions are monotonic: pending -> processing -> (completed|failed).
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

func (s JobStatus) String() string { return string(s) }

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusCompleted, JobStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine permits moving to next.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	switch s {
	case JobStatusPending:
		return next == JobStatusProcessing
	case JobStatusProcessing:
		return next == JobStatusCompleted || next == JobStatusFailed
	}
	return false
}

// JournalEntryStatus is the lifecycle state of an async capture submission.
type JournalEntryStatus string

const (
	JournalStatusDraft      JournalEntryStatus = "draft"
	JournalStatusProcessing JournalEntryStatus = "processing"
	JournalStatusReview     JournalEntryStatus = "review"
	JournalStatusCompleted  JournalEntryStatus = "completed"
	JournalStatusCancelled  JournalEntryStatus = "cancelled"
)

func (s JournalEntryStatus) String() string { return string(s) }

func (s JournalEntryStatus) IsValid() bool {
	switch s {
	case JournalStatusDraft, JournalStatusProcessing, JournalStatusReview,
		JournalStatusCompleted, JournalStatusCancelled:
		return true
	}
	return false
}

// SubscriptionTier gates how much capture work an account may do.
type SubscriptionTier string

const (
	TierFree  SubscriptionTier = "free"
	TierPaid  SubscriptionTier = "paid"
	TierAlpha SubscriptionTier = "alpha"
)

func (t SubscriptionTier) String() string { return string(t) }

func (t SubscriptionTier) IsValid() bool {
	switch t {
	case TierFree, TierPaid, TierAlpha:
		return true
	}
	return false
}

// Unlimited reports whether the tier has no capture caps.
func (t SubscriptionTier) Unlimited() bool {
	return t == TierPaid || t == TierAlpha
}
