package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
	"github.com/casetrail/casetrail-backend/internal/service/suggest"
	"github.com/casetrail/casetrail-backend/pkg/ctxutil"
)

// evidenceRepo defines the minimal read interface needed by EvidenceHandler.
type evidenceRepo interface {
	GetByID(ctx context.Context, userID, evidenceID uuid.UUID) (*domain.Evidence, error)
}

// urlSigner issues time-limited download URLs for stored files.
type urlSigner interface {
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

// suggestService defines the minimal interface for evidence suggestions.
type suggestService interface {
	SuggestForEvents(ctx context.Context, userID uuid.UUID, eventIDs []uuid.UUID) ([]suggest.EventSuggestions, error)
}

// EvidenceHandler serves evidence reads and suggestion requests.
type EvidenceHandler struct {
	evidence evidenceRepo
	signer   urlSigner
	suggest  suggestService
	urlTTL   time.Duration
	log      *slog.Logger
}

// NewEvidenceHandler creates an EvidenceHandler.
func NewEvidenceHandler(
	evidence evidenceRepo,
	signer urlSigner,
	suggestSvc suggestService,
	urlTTL time.Duration,
	logger *slog.Logger,
) *EvidenceHandler {
	return &EvidenceHandler{
		evidence: evidence,
		signer:   signer,
		suggest:  suggestSvc,
		urlTTL:   urlTTL,
		log:      logger.With("handler", "evidence"),
	}
}

type evidenceResponse struct {
	ID               string  `json:"id"`
	SourceType       string  `json:"sourceType"`
	Summary          string  `json:"summary"`
	OriginalFilename *string `json:"originalFilename,omitempty"`
	MimeType         *string `json:"mimeType,omitempty"`
	DownloadURL      *string `json:"downloadUrl,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

type suggestRequest struct {
	EventIDs []string `json:"eventIds"`
}

type suggestionResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type eventSuggestionsResponse struct {
	EventID     string               `json:"eventId"`
	Suggestions []suggestionResponse `json:"suggestions"`
}

// GetEvidence handles GET /api/evidence/{id}. The source type in the
// response is the display mapping, not the stored value.
func (h *EvidenceHandler) GetEvidence(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	evidenceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid evidence id")
		return
	}

	ev, err := h.evidence.GetByID(r.Context(), userID, evidenceID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := evidenceResponse{
		ID:               ev.ID.String(),
		SourceType:       ev.DisplaySourceType().String(),
		Summary:          ev.Summary,
		OriginalFilename: ev.OriginalFilename,
		MimeType:         ev.MimeType,
		CreatedAt:        ev.CreatedAt.Format(time.RFC3339),
	}

	if ev.StoragePath != nil {
		url, err := h.signer.SignedURL(r.Context(), *ev.StoragePath, h.urlTTL)
		if err != nil {
			h.log.WarnContext(r.Context(), "signed URL failed",
				slog.String("evidence_id", ev.ID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			resp.DownloadURL = &url
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// SuggestEvidence handles POST /api/events/suggest-evidence.
func (h *EvidenceHandler) SuggestEvidence(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	eventIDs, err := parseUUIDList(req.EventIDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	results, err := h.suggest.SuggestForEvents(r.Context(), userID, eventIDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]eventSuggestionsResponse, 0, len(results))
	for _, es := range results {
		item := eventSuggestionsResponse{
			EventID:     es.EventID.String(),
			Suggestions: []suggestionResponse{},
		}
		for _, sg := range es.Suggestions {
			item.Suggestions = append(item.Suggestions, suggestionResponse{
				Type:        sg.Type.String(),
				Description: sg.Description,
				Status:      sg.Status.String(),
			})
		}
		out = append(out, item)
	}

	writeJSON(w, http.StatusOK, map[string][]eventSuggestionsResponse{"events": out})
}
