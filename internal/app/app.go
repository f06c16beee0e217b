// Package app wires configuration, storage, providers, services, and
// transports into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/casetrail/casetrail-backend/internal/adapter/postgres"
	eventrepo "github.com/casetrail/casetrail-backend/internal/adapter/postgres/event"
	evidencerepo "github.com/casetrail/casetrail-backend/internal/adapter/postgres/evidence"
	jobrepo "github.com/casetrail/casetrail-backend/internal/adapter/postgres/job"
	journalrepo "github.com/casetrail/casetrail-backend/internal/adapter/postgres/journal"
	userrepo "github.com/casetrail/casetrail-backend/internal/adapter/postgres/user"
	"github.com/casetrail/casetrail-backend/internal/adapter/provider/claude"
	"github.com/casetrail/casetrail-backend/internal/adapter/provider/deepgram"
	"github.com/casetrail/casetrail-backend/internal/adapter/storage/local"
	"github.com/casetrail/casetrail-backend/internal/auth"
	"github.com/casetrail/casetrail-backend/internal/config"
	"github.com/casetrail/casetrail-backend/internal/jobqueue"
	"github.com/casetrail/casetrail-backend/internal/service/capture"
	"github.com/casetrail/casetrail-backend/internal/service/extraction"
	"github.com/casetrail/casetrail-backend/internal/service/jobs"
	"github.com/casetrail/casetrail-backend/internal/service/suggest"
	"github.com/casetrail/casetrail-backend/internal/service/usage"
	"github.com/casetrail/casetrail-backend/internal/transport/rest"
	"github.com/casetrail/casetrail-backend/internal/worker"
)

// Run starts the full process: HTTP server plus the capture worker. The
// queue is in-process, so the worker must live in the same process as the
// publisher. Run blocks until the context is cancelled or a component fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	events := eventrepo.New(pool)
	evidence := evidencerepo.New(pool)
	jobsRepo := jobrepo.New(pool)
	journal := journalrepo.New(pool)
	users := userrepo.New(pool)

	store, err := local.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	llm := claude.New(cfg.Extraction, logger)
	stt := deepgram.New(cfg.Transcription, logger)

	extractionSvc := extraction.NewService(logger, llm)
	usageSvc := usage.NewService(logger, cfg.Limits, users, events, evidence, journal)
	captureSvc := capture.NewService(logger, cfg.Media, usageSvc, stt, extractionSvc,
		events, evidence, journal, users, store)
	suggestSvc := suggest.NewService(logger, extractionSvc, events, users)

	pubsub := jobqueue.NewPubSub(cfg.Queue, logger)
	defer pubsub.Close() //nolint:errcheck

	publisher := jobqueue.NewPublisher(pubsub, cfg.Queue)
	txm := postgres.NewTxManager(pool)
	jobsSvc := jobs.NewService(logger, usageSvc, journal, jobsRepo, evidence, publisher, txm)

	wrk, err := worker.New(logger, cfg.Queue, pubsub, captureSvc, jobsRepo, journal)
	if err != nil {
		return fmt.Errorf("init worker: %w", err)
	}

	verifier := auth.NewVerifier(cfg.Auth)

	router := rest.NewRouter(cfg, logger, verifier, rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Capture:  rest.NewCaptureHandler(captureSvc, logger),
		Jobs:     rest.NewJobsHandler(jobsSvc, logger),
		Evidence: rest.NewEvidenceHandler(evidence, store, suggestSvc, cfg.Storage.SignedURLTTL, logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("worker started", slog.String("topic", cfg.Queue.CaptureTopic))
		if err := wrk.Run(ctx); err != nil {
			errCh <- fmt.Errorf("worker: %w", err)
		}
	}()

	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", slog.String("error", err.Error()))
	}
	if err := wrk.Close(); err != nil {
		logger.Error("worker shutdown failed", slog.String("error", err.Error()))
	}

	return nil
}
