package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/config"
	"github.com/casetrail/casetrail-backend/internal/transport/middleware"
)

// tokenValidator validates bearer tokens for the auth middleware.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Capture  *CaptureHandler
	Jobs     *JobsHandler
	Evidence *EvidenceHandler
}

// NewRouter builds the HTTP handler tree with the shared middleware chain.
// Auth is permissive at the middleware layer (anonymous requests pass
// through); each API handler rejects requests without an authenticated user.
func NewRouter(
	cfg *config.Config,
	log *slog.Logger,
	validator tokenValidator,
	h Handlers,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	limiter := middleware.NewRateLimiter(5 * time.Minute)

	// Capture endpoints spend model tokens; they get a tighter rate limit
	// than the read endpoints.
	captureChain := middleware.Chain(limiter.Limit(30))
	mux.Handle("POST /api/capture", captureChain(http.HandlerFunc(h.Capture.Capture)))
	mux.Handle("POST /api/journal", captureChain(http.HandlerFunc(h.Jobs.Submit)))
	mux.Handle("POST /api/events/suggest-evidence", captureChain(http.HandlerFunc(h.Evidence.SuggestEvidence)))

	mux.HandleFunc("GET /api/jobs/{id}", h.Jobs.GetJob)
	mux.HandleFunc("GET /api/evidence/{id}", h.Evidence.GetEvidence)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator),
	)

	return chain(http.MaxBytesHandler(mux, cfg.Server.MaxBodyBytes))
}
