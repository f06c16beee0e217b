package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// errorResponse is the JSON error envelope. Reason is a stable machine code;
// Error is for humans.
type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, reason, message string) {
	writeJSON(w, status, errorResponse{Error: message, Reason: reason})
}

// handleError maps domain errors onto HTTP statuses and stable reason codes.
// Unknown errors are logged and masked.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var limitErr *domain.LimitReachedError
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.As(err, &limitErr):
		writeError(w, http.StatusForbidden, "limit_reached",
			fmt.Sprintf("%s limit of %d reached on the %s tier", limitErr.Resource, limitErr.Limit, limitErr.Tier))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "not found")
	case errors.As(err, &upstreamErr):
		log.ErrorContext(r.Context(), "upstream failure",
			slog.String("upstream", upstreamErr.Service),
			slog.String("kind", string(upstreamErr.Kind)),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadGateway, "upstream_error",
			fmt.Sprintf("%s is unavailable, please retry", upstreamErr.Service))
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
