package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrLimitReached  = errors.New("limit reached")
	ErrUpstream      = errors.New("upstream error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// LimitReachedError is the usage gate denial. It is distinct from transport
// and auth errors so the client can render an upgrade prompt.
type LimitReachedError struct {
	Tier     SubscriptionTier
	Resource string // "entries" or "evidence"
	Limit    int
	Current  int
}

func (e *LimitReachedError) Error() string {
	return fmt.Sprintf("%s limit reached for tier %s: %d/%d", e.Resource, e.Tier, e.Current, e.Limit)
}

func (e *LimitReachedError) Unwrap() error { return ErrLimitReached }

// UpstreamKind distinguishes upstream failure modes so the caller can decide
// whether a retry is reasonable.
type UpstreamKind string

const (
	UpstreamAuth        UpstreamKind = "auth"         // bad credentials, not retryable
	UpstreamRateLimited UpstreamKind = "rate_limit"   // retryable by the caller
	UpstreamBadResponse UpstreamKind = "bad_response" // empty or schema-invalid output
	UpstreamUnavailable UpstreamKind = "unavailable"  // transport-level failure
)

// UpstreamError wraps a failure from an external collaborator
// (transcription or extraction model).
type UpstreamError struct {
	Service string // "deepgram", "claude"
	Kind    UpstreamKind
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s (%s): %v", e.Service, e.Kind, e.Err)
	}
	return fmt.Sprintf("upstream %s (%s)", e.Service, e.Kind)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// Retryable reports whether the caller may reasonably retry the request.
func (e *UpstreamError) Retryable() bool {
	return e.Kind == UpstreamRateLimited || e.Kind == UpstreamUnavailable
}
