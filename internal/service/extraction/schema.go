package extraction

// Wire types for the model's JSON output. The model is instructed to emit
// exactly this shape; anything that does not validate is rejected as an
// upstream failure rather than coerced (see validate.go).
//
// Time is never resolved by the model. It reports the raw hints it found
// (explicit date, clock time, day part) and the deterministic resolver in
// temporal.go combines them with the reference date. This keeps the
// "never fabricate a time" rule enforceable in code.

type wirePayload struct {
	Events              []wireEvent          `json:"events"`
	Communications      []wireCommunication  `json:"communications,omitempty"`
	EvidenceSuggestions []wireSuggestion     `json:"evidence_suggestions,omitempty"`
	ActionItems         []string             `json:"action_items,omitempty"`
	Metadata            wireMetadata         `json:"metadata"`
}

type wireEvent struct {
	Type               string            `json:"type"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Date               string            `json:"date,omitempty"`       // "2006-01-02" when explicitly stated
	ClockTime          string            `json:"clock_time,omitempty"` // "15:04" when explicitly stated
	DayPart            string            `json:"day_part,omitempty"`   // morning|noon|afternoon|evening|night
	DurationMinutes    *int              `json:"duration_minutes,omitempty"`
	Location           string            `json:"location,omitempty"`
	ChildInvolved      bool              `json:"child_involved"`
	AgreementViolation *bool             `json:"agreement_violation,omitempty"`
	SafetyConcern      *bool             `json:"safety_concern,omitempty"`
	WelfareImpact      string            `json:"welfare_impact,omitempty"`
	Participants       []wireParticipant `json:"participants,omitempty"`
	EvidenceMentions   []wireMention     `json:"evidence_mentions,omitempty"`
}

type wireParticipant struct {
	Role  string `json:"role"`
	Label string `json:"label"`
}

type wireMention struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type wireCommunication struct {
	Medium       string `json:"medium"` // text|email
	Sender       string `json:"sender"`
	Summary      string `json:"summary"`
	Date         string `json:"date,omitempty"`
	ClockTime    string `json:"clock_time,omitempty"`
	Hostile      bool   `json:"hostile"`
	ChildRelated bool   `json:"child_related"`
}

type wireSuggestion struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type wireMetadata struct {
	Ambiguities []string `json:"ambiguities,omitempty"`
	Confidence  float64  `json:"confidence"`
}

// outputSchema is embedded verbatim in every extraction prompt.
const outputSchema = `{
  "events": [
    {
      "type": "<incident|positive|medical|school|communication|legal>",
      "title": "<short factual title>",
      "description": "<factual description in third person>",
      "date": "<YYYY-MM-DD only if a full date is explicitly stated, else omit>",
      "clock_time": "<HH:MM 24h only if a clock time is explicitly stated, else omit>",
      "day_part": "<morning|noon|afternoon|evening|night only if stated, else omit>",
      "duration_minutes": <integer or omit>,
      "location": "<location or omit>",
      "child_involved": <true|false>,
      "agreement_violation": <true|false or omit if not determinable>,
      "safety_concern": <true|false or omit if not determinable>,
      "welfare_impact": "<none|mild|moderate|severe|unknown>",
      "participants": [{"role": "<primary|witness|professional>", "label": "<name or description>"}],
      "evidence_mentions": [{"type": "<text|email|photo|document|recording|other>", "description": "<what the evidence is>", "status": "<have|need_to_get|need_to_create>"}]
    }
  ],
  "communications": [
    {"medium": "<text|email>", "sender": "<who sent it>", "summary": "<factual summary>", "date": "<YYYY-MM-DD or omit>", "clock_time": "<HH:MM or omit>", "hostile": <true|false>, "child_related": <true|false>}
  ],
  "evidence_suggestions": [
    {"type": "<text|email|photo|document|recording|other>", "description": "<evidence worth gathering>", "status": "<have|need_to_get|need_to_create>"}
  ],
  "action_items": ["<suggested follow-up>"],
  "metadata": {"ambiguities": ["<anything unclear in the input>"], "confidence": <0.0-1.0>}
}`
