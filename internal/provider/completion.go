// Package provider holds the shared request/response types exchanged with
// external AI collaborators.
package provider

import "github.com/casetrail/casetrail-backend/internal/domain"

// CompletionRequest is one schema-constrained generation request.
type CompletionRequest struct {
	System string
	Prompt string
	// Image, when set, is attached to the user message so the model can
	// read a screenshot or photo directly.
	Image *domain.MediaBlob
}

// CompletionResponse is the raw model reply plus its token accounting,
// echoed back to the caller for cost tracking.
type CompletionResponse struct {
	Text  string
	Usage domain.TokenUsage
}
