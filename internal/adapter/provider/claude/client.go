// Package claude implements the extraction model collaborator using the
// Anthropic Messages API.
package claude

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/casetrail/casetrail-backend/internal/config"
	"github.com/casetrail/casetrail-backend/internal/domain"
	"github.com/casetrail/casetrail-backend/internal/provider"
)

// Client calls the Anthropic Messages API for schema-constrained extraction.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
	log       *slog.Logger
}

// New creates a Client from config.
func New(cfg config.ExtractionConfig, logger *slog.Logger) *Client {
	return &Client{
		api: anthropic.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithRequestTimeout(cfg.Timeout),
		),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "claude"),
	}
}

// Complete sends one generation request and returns the text reply with
// token usage. Upstream auth and rate-limit failures surface typed; an empty
// reply is a bad-response upstream error because the pipeline cannot proceed
// without parseable output.
func (c *Client) Complete(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResponse, error) {
	content := []anthropic.ContentBlockParamUnion{}
	if req.Image != nil {
		content = append(content, anthropic.NewImageBlockBase64(
			req.Image.MimeType,
			base64.StdEncoding.EncodeToString(req.Image.Data),
		))
	}
	content = append(content, anthropic.NewTextBlock(req.Prompt))

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(content...),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return nil, mapAPIError(err)
	}

	text := ""
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return nil, &domain.UpstreamError{
			Service: "claude",
			Kind:    domain.UpstreamBadResponse,
			Err:     fmt.Errorf("empty model reply"),
		}
	}

	c.log.DebugContext(ctx, "completion done",
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("latency", time.Since(start)),
	)

	return &provider.CompletionResponse{
		Text: text,
		Usage: domain.TokenUsage{
			InputTokens:  msg.Usage.InputTokens,
			OutputTokens: msg.Usage.OutputTokens,
		},
	}, nil
}

// mapAPIError converts SDK errors into typed upstream errors.
func mapAPIError(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &domain.UpstreamError{Service: "claude", Kind: domain.UpstreamAuth, Err: err}
		case http.StatusTooManyRequests:
			return &domain.UpstreamError{Service: "claude", Kind: domain.UpstreamRateLimited, Err: err}
		}
	}
	return &domain.UpstreamError{Service: "claude", Kind: domain.UpstreamUnavailable, Err: err}
}
