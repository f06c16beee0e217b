package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// captureService defines the minimal interface needed by CaptureHandler.
type captureService interface {
	Capture(ctx context.Context, in domain.CaptureInput) (*domain.CaptureResult, error)
}

// CaptureHandler serves the synchronous capture endpoint.
type CaptureHandler struct {
	svc captureService
	log *slog.Logger
}

// NewCaptureHandler creates a CaptureHandler.
func NewCaptureHandler(svc captureService, logger *slog.Logger) *CaptureHandler {
	return &CaptureHandler{svc: svc, log: logger.With("handler", "capture")}
}

type captureJSONRequest struct {
	NarrativeText            string   `json:"narrativeText"`
	UserAnnotation           string   `json:"userAnnotation"`
	ReferenceDate            string   `json:"referenceDate"`
	ReferenceTimeDescription string   `json:"referenceTimeDescription"`
	EvidenceIDs              []string `json:"evidenceIds"`
}

type captureResponse struct {
	EventIDs         []string `json:"eventIds"`
	CommunicationIDs []string `json:"communicationIds"`
	EvidenceIDs      []string `json:"evidenceIds"`
	ActionItemIDs    []string `json:"actionItemIds"`
	Ambiguities      []string `json:"ambiguities"`
	Confidence       float64  `json:"confidence"`
}

// Capture handles POST /api/capture. Text-only submissions may arrive as
// JSON; submissions carrying audio or images arrive as multipart form data.
func (h *CaptureHandler) Capture(w http.ResponseWriter, r *http.Request) {
	in, err := decodeCaptureInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.svc.Capture(r.Context(), *in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaptureResponse(result))
}

func decodeCaptureInput(r *http.Request) (*domain.CaptureInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		return decodeMultipartCapture(r)
	}

	var req captureJSONRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, domain.NewValidationError("body", "invalid request body")
	}

	in := &domain.CaptureInput{
		NarrativeText:            req.NarrativeText,
		UserAnnotation:           req.UserAnnotation,
		ReferenceTimeDescription: req.ReferenceTimeDescription,
	}

	ref, err := parseReferenceDate(req.ReferenceDate)
	if err != nil {
		return nil, err
	}
	in.ReferenceDate = ref

	ids, err := parseUUIDList(req.EvidenceIDs)
	if err != nil {
		return nil, err
	}
	in.EvidenceIDs = ids

	return in, nil
}

func decodeMultipartCapture(r *http.Request) (*domain.CaptureInput, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, domain.NewValidationError("body", "invalid multipart form")
	}

	in := &domain.CaptureInput{
		NarrativeText:            r.FormValue("narrative_text"),
		UserAnnotation:           r.FormValue("user_annotation"),
		ReferenceTimeDescription: r.FormValue("reference_time_description"),
	}

	ref, err := parseReferenceDate(r.FormValue("reference_date"))
	if err != nil {
		return nil, err
	}
	in.ReferenceDate = ref

	if raw := r.FormValue("evidence_ids"); raw != "" {
		ids, err := parseUUIDList(strings.Split(raw, ","))
		if err != nil {
			return nil, err
		}
		in.EvidenceIDs = ids
	}

	if files := r.MultipartForm.File["audio"]; len(files) > 0 {
		blob, err := readUpload(files[0])
		if err != nil {
			return nil, err
		}
		in.Audio = blob
	}

	for _, fh := range r.MultipartForm.File["images"] {
		blob, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		in.Images = append(in.Images, *blob)
	}

	return in, nil
}

func readUpload(fh *multipart.FileHeader) (*domain.MediaBlob, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, domain.NewValidationError("files", "unreadable upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.NewValidationError("files", "unreadable upload")
	}

	return &domain.MediaBlob{
		Data:     data,
		MimeType: fh.Header.Get("Content-Type"),
		Filename: fh.Filename,
	}, nil
}

// parseReferenceDate accepts a bare date or a full RFC 3339 timestamp.
func parseReferenceDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	return nil, domain.NewValidationError("reference_date", "must be YYYY-MM-DD or RFC 3339")
}

func parseUUIDList(raw []string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domain.NewValidationError("evidence_ids", "invalid id "+s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toCaptureResponse(result *domain.CaptureResult) captureResponse {
	return captureResponse{
		EventIDs:         uuidStrings(result.EventIDs),
		CommunicationIDs: uuidStrings(result.CommunicationIDs),
		EvidenceIDs:      uuidStrings(result.EvidenceIDs),
		ActionItemIDs:    uuidStrings(result.ActionItemIDs),
		Ambiguities:      emptySlice(result.Ambiguities),
		Confidence:       result.Confidence,
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
