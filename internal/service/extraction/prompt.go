package extraction

import (
	"fmt"
	"strings"
	"time"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// buildSystem injects the user and case backdrop so first-person pronouns
// resolve consistently and relevance flags are judged against the right
// situation.
func buildSystem(cc domain.CaseContext) string {
	var b strings.Builder
	b.WriteString("You are a documentation assistant for a parent keeping a factual record of co-parenting events for a ")
	b.WriteString(cc.CaseType)
	b.WriteString(".\n")
	fmt.Fprintf(&b, "The narrator is %s, acting as %s in the case.", cc.DisplayName, cc.Role)
	if cc.OpposingParty != "" {
		fmt.Fprintf(&b, " The other party is %s.", cc.OpposingParty)
	}
	if cc.Goals != "" {
		fmt.Fprintf(&b, " The narrator's stated goals: %s.", cc.Goals)
	}
	b.WriteString("\nFirst-person pronouns (I, me, my) always refer to the narrator.")
	b.WriteString("\nRecord only what the input supports. Never invent details, times, or severity.")
	return b.String()
}

// buildPrompt assembles the extraction request for a narrative and/or image
// capture.
func buildPrompt(in Input) string {
	var b strings.Builder

	b.WriteString("Extract discrete timeline events from the input below.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- A single input may describe zero, one, or several separate events; create one event per distinct occurrence, and none that the input does not support.\n")
	b.WriteString("- Report time ONLY through the date / clock_time / day_part fields, quoting what the input actually states. If the input gives no resolvable time, omit all three. Never guess.\n")
	b.WriteString("- agreement_violation and safety_concern: true or false only when the input supports a judgment, otherwise omit the field entirely.\n")
	b.WriteString("- welfare_impact is unknown unless the input shows an effect on the child.\n")
	if in.Image != nil {
		b.WriteString("- The attached image is part of the capture. If it shows a text or email exchange, extract it into communications (and an event when it documents an occurrence). If it is a photo, describe it in evidence_suggestions with status \"have\".\n")
	}
	b.WriteString("\nOutput ONLY a valid JSON object matching this exact schema, no markdown, no commentary:\n")
	b.WriteString(outputSchema)

	fmt.Fprintf(&b, "\n\nReference date for relative time language: %s.\n", in.Reference.Format("Monday, 2006-01-02"))
	if in.ReferenceTimeDescription != "" {
		fmt.Fprintf(&b, "The narrator states the events happened: %q.\n", in.ReferenceTimeDescription)
	}
	if in.Annotation != "" {
		fmt.Fprintf(&b, "Narrator's note about this capture: %q.\n", in.Annotation)
	}

	if in.Narrative != "" {
		b.WriteString("\nInput narrative:\n")
		b.WriteString(in.Narrative)
	} else {
		b.WriteString("\nThe capture consists of the attached image only.")
	}

	return b.String()
}

// buildSuggestionPrompt asks for evidence suggestions for one existing
// event. Only the evidence_suggestions field of the schema is expected.
func buildSuggestionPrompt(e *domain.Event) string {
	var b strings.Builder
	b.WriteString("Given this documented timeline event, suggest evidence that would support it: items the narrator likely already has (status \"have\" or \"need_to_get\") or should create (status \"need_to_create\").\n\n")
	fmt.Fprintf(&b, "Event type: %s\nTitle: %s\nDescription: %s\n", e.Type, e.Title, e.Description)
	if e.PrimaryTimestamp != nil {
		fmt.Fprintf(&b, "When: %s (%s)\n", e.PrimaryTimestamp.Format(time.RFC3339), e.TimestampPrecision)
	}
	b.WriteString("\nOutput ONLY a valid JSON object of the form:\n")
	b.WriteString(`{"evidence_suggestions": [{"type": "<text|email|photo|document|recording|other>", "description": "...", "status": "<have|need_to_get|need_to_create>"}], "metadata": {"confidence": <0.0-1.0>}}`)
	b.WriteString("\nSuggest at most five items, no markdown, no commentary.")
	return b.String()
}
