// Package extraction converts unstructured capture input into structured
// timeline candidates through a schema-constrained model call. It owns the
// output schema, its validation, and the deterministic temporal policy.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/casetrail/casetrail-backend/internal/domain"
	"github.com/casetrail/casetrail-backend/internal/provider"
)

//go:generate moq -out llm_client_mock_test.go -pkg extraction . llmClient

type llmClient interface {
	Complete(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResponse, error)
}

// Service is the extraction engine.
type Service struct {
	llm llmClient
	log *slog.Logger
}

// NewService creates the extraction engine.
func NewService(log *slog.Logger, llm llmClient) *Service {
	return &Service{
		llm: llm,
		log: log.With("service", "extraction"),
	}
}

// Input is one extraction request. Narrative and Image are each optional but
// at least one must be present; the capture service guarantees that.
type Input struct {
	Narrative                string
	Image                    *domain.MediaBlob
	Annotation               string
	Context                  domain.CaseContext
	Reference                time.Time
	ReferenceTimeDescription string
}

// Extract runs one schema-constrained model call and returns the validated,
// mapped result. Output that fails schema validation is an upstream failure
// (the model misbehaved), never silently coerced.
func (s *Service) Extract(ctx context.Context, in Input) (*domain.ExtractionResult, error) {
	reference := in.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	resp, err := s.llm.Complete(ctx, provider.CompletionRequest{
		System: buildSystem(in.Context),
		Prompt: buildPrompt(in),
		Image:  in.Image,
	})
	if err != nil {
		return nil, err
	}

	payload, raw, err := parsePayload(resp.Text)
	if err != nil {
		return nil, &domain.UpstreamError{
			Service: "claude",
			Kind:    domain.UpstreamBadResponse,
			Err:     err,
		}
	}

	// The user's own time description beats anything inferred from the
	// narrative.
	userHints := ParseTimeDescription(in.ReferenceTimeDescription)

	result := mapPayload(payload, reference, userHints)
	result.Raw = raw
	result.TokenUsage = resp.Usage

	s.log.InfoContext(ctx, "extraction done",
		slog.Int("events", len(result.Events)),
		slog.Int("communications", len(result.Communications)),
		slog.Int("suggestions", len(result.EvidenceSuggestions)),
		slog.Float64("confidence", result.Confidence),
		slog.Int64("input_tokens", result.TokenUsage.InputTokens),
		slog.Int64("output_tokens", result.TokenUsage.OutputTokens),
	)

	return result, nil
}

// SuggestEvidence asks the model for evidence suggestions for one existing
// event. It never mutates the event.
func (s *Service) SuggestEvidence(ctx context.Context, cc domain.CaseContext, e *domain.Event) ([]domain.EvidenceSuggestion, error) {
	resp, err := s.llm.Complete(ctx, provider.CompletionRequest{
		System: buildSystem(cc),
		Prompt: buildSuggestionPrompt(e),
	})
	if err != nil {
		return nil, err
	}

	payload, _, err := parsePayload(resp.Text)
	if err != nil {
		return nil, &domain.UpstreamError{
			Service: "claude",
			Kind:    domain.UpstreamBadResponse,
			Err:     err,
		}
	}

	var suggestions []domain.EvidenceSuggestion
	for _, ws := range payload.EvidenceSuggestions {
		suggestions = append(suggestions, domain.EvidenceSuggestion{
			Type:        domain.EvidenceSourceType(ws.Type),
			Description: ws.Description,
			Status:      domain.MentionStatus(ws.Status),
		})
	}

	return suggestions, nil
}

// parsePayload extracts the JSON object from the model reply, checks it is
// valid JSON, unmarshals and schema-validates it. The extracted raw bytes
// are returned for the audit payload.
func parsePayload(text string) (*wirePayload, json.RawMessage, error) {
	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, nil, err
	}
	if !json.Valid([]byte(jsonStr)) {
		return nil, nil, fmt.Errorf("reply does not contain valid JSON")
	}

	var payload wirePayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, nil, fmt.Errorf("decode reply: %w", err)
	}

	if err := validatePayload(&payload); err != nil {
		return nil, nil, fmt.Errorf("schema validation: %w", err)
	}

	return &payload, json.RawMessage(jsonStr), nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in reply")
	}
	return s[start : end+1], nil
}
