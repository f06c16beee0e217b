// Package deepgram implements the speech-to-text collaborator using the
// Deepgram pre-recorded transcription API.
package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/casetrail/casetrail-backend/internal/config"
	"github.com/casetrail/casetrail-backend/internal/domain"
)

// Provider transcribes audio through the Deepgram HTTP API.
type Provider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Provider from config.
func New(cfg config.TranscriptionConfig, logger *slog.Logger) *Provider {
	return &Provider{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "deepgram"),
	}
}

// NewWithURL creates a Provider with a custom base URL (for testing).
func NewWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "deepgram"),
	}
}

// apiResponse is the subset of the Deepgram response the pipeline reads.
type apiResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Transcribe sends audio bytes and returns the plain-text transcript.
// An empty transcript is not an error: the caller may still proceed when
// other capture inputs exist. 401 and 429 surface as typed upstream errors;
// rate limits are retryable by the caller, never retried here.
func (p *Provider) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("deepgram: create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+p.apiKey)
	req.Header.Set("Content-Type", mimeType)

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", &domain.UpstreamError{Service: "deepgram", Kind: domain.UpstreamUnavailable, Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", &domain.UpstreamError{
			Service: "deepgram",
			Kind:    domain.UpstreamAuth,
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	case http.StatusTooManyRequests:
		return "", &domain.UpstreamError{
			Service: "deepgram",
			Kind:    domain.UpstreamRateLimited,
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	default:
		return "", &domain.UpstreamError{
			Service: "deepgram",
			Kind:    domain.UpstreamUnavailable,
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("deepgram: read body: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &domain.UpstreamError{
			Service: "deepgram",
			Kind:    domain.UpstreamBadResponse,
			Err:     fmt.Errorf("decode json: %w", err),
		}
	}

	transcript := ""
	if len(parsed.Results.Channels) > 0 && len(parsed.Results.Channels[0].Alternatives) > 0 {
		transcript = parsed.Results.Channels[0].Alternatives[0].Transcript
	}

	p.log.DebugContext(ctx, "transcription done",
		slog.Int("audio_bytes", len(audio)),
		slog.Int("transcript_chars", len(transcript)),
		slog.Duration("latency", time.Since(start)),
	)

	return transcript, nil
}
