package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// jobsService defines the minimal interface needed by JobsHandler.
type jobsService interface {
	Submit(ctx context.Context, entry domain.JournalEntry, evidenceIDs []uuid.UUID) (*domain.Job, *domain.JournalEntry, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*domain.Job, error)
}

// JobsHandler serves the asynchronous submission and job status endpoints.
type JobsHandler struct {
	svc jobsService
	log *slog.Logger
}

// NewJobsHandler creates a JobsHandler.
func NewJobsHandler(svc jobsService, logger *slog.Logger) *JobsHandler {
	return &JobsHandler{svc: svc, log: logger.With("handler", "jobs")}
}

type submitRequest struct {
	EventText     string   `json:"eventText"`
	ReferenceDate string   `json:"referenceDate"`
	EvidenceIDs   []string `json:"evidenceIds"`
}

type submitResponse struct {
	JobID          string `json:"jobId"`
	JournalEntryID string `json:"journalEntryId"`
	Status         string `json:"status"`
}

type jobResponse struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	JournalEntryID *string `json:"journalEntryId,omitempty"`
	Error          *string `json:"error,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	CompletedAt    *string `json:"completedAt,omitempty"`
}

// Submit handles POST /api/journal. Acceptance returns 202 with ids the
// client polls; extraction runs in the worker.
func (h *JobsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	ref, err := parseReferenceDate(req.ReferenceDate)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	evidenceIDs, err := parseUUIDList(req.EvidenceIDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	job, entry, err := h.svc.Submit(r.Context(), domain.JournalEntry{
		EventText:     req.EventText,
		ReferenceDate: ref,
	}, evidenceIDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, submitResponse{
		JobID:          job.ID.String(),
		JournalEntryID: entry.ID.String(),
		Status:         job.Status.String(),
	})
}

// GetJob handles GET /api/jobs/{id}.
func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid job id")
		return
	}

	job, err := h.svc.GetJob(r.Context(), jobID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toJobResponse(job))
}

func toJobResponse(j *domain.Job) jobResponse {
	resp := jobResponse{
		ID:        j.ID.String(),
		Type:      j.Type,
		Status:    j.Status.String(),
		Error:     j.Error,
		CreatedAt: j.CreatedAt.Format(time.RFC3339),
	}
	if j.JournalEntryID != nil {
		s := j.JournalEntryID.String()
		resp.JournalEntryID = &s
	}
	if j.CompletedAt != nil {
		s := j.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}
