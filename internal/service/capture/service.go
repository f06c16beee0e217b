// Package capture orchestrates the capture-to-timeline pipeline: media
// intake, usage gating, transcription, extraction, and the multi-table
// persistence of the result.
package capture

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/config"
	"github.com/casetrail/casetrail-backend/internal/domain"
	"github.com/casetrail/casetrail-backend/internal/service/extraction"
)

//go:generate moq -out usage_gate_mock_test.go -pkg capture . usageGate
//go:generate moq -out transcriber_mock_test.go -pkg capture . transcriber
//go:generate moq -out extractor_mock_test.go -pkg capture . extractor
//go:generate moq -out event_repo_mock_test.go -pkg capture . eventRepo
//go:generate moq -out evidence_repo_mock_test.go -pkg capture . evidenceRepo
//go:generate moq -out journal_repo_mock_test.go -pkg capture . journalRepo
//go:generate moq -out user_repo_mock_test.go -pkg capture . userRepo
//go:generate moq -out file_store_mock_test.go -pkg capture . fileStore

type usageGate interface {
	CheckCanCapture(ctx context.Context, userID uuid.UUID) error
	CheckCanAddEvidence(ctx context.Context, userID uuid.UUID) error
}

type transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

type extractor interface {
	Extract(ctx context.Context, in extraction.Input) (*domain.ExtractionResult, error)
}

type eventRepo interface {
	InsertEvents(ctx context.Context, userID uuid.UUID, events []domain.Event) ([]uuid.UUID, error)
	InsertParticipants(ctx context.Context, userID uuid.UUID, participants []domain.Participant) error
	InsertMentions(ctx context.Context, userID uuid.UUID, mentions []domain.EvidenceMention) error
	InsertActionItems(ctx context.Context, userID uuid.UUID, items []domain.ActionItem) error
	LinkEvidence(ctx context.Context, userID uuid.UUID, eventIDs, evidenceIDs []uuid.UUID) (int, error)
}

type evidenceRepo interface {
	Create(ctx context.Context, userID uuid.UUID, ev *domain.Evidence) (*domain.Evidence, error)
	ResolveOwned(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}

type journalRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	EvidenceIDs(ctx context.Context, userID, entryID uuid.UUID) ([]uuid.UUID, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type fileStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
}

// Service runs the capture pipeline.
type Service struct {
	gate      usageGate
	stt       transcriber
	extractor extractor
	events    eventRepo
	evidence  evidenceRepo
	journal   journalRepo
	users     userRepo
	store     fileStore
	media     config.MediaConfig
	log       *slog.Logger
}

// NewService creates the capture service.
func NewService(
	log *slog.Logger,
	media config.MediaConfig,
	gate usageGate,
	stt transcriber,
	ex extractor,
	events eventRepo,
	evidence evidenceRepo,
	journal journalRepo,
	users userRepo,
	store fileStore,
) *Service {
	return &Service{
		gate:      gate,
		stt:       stt,
		extractor: ex,
		events:    events,
		evidence:  evidence,
		journal:   journal,
		users:     users,
		store:     store,
		media:     media,
		log:       log.With("service", "capture"),
	}
}

// caseContext loads the extraction backdrop for a user. Lookup failures are
// non-fatal: extraction proceeds with the generic fallback.
func (s *Service) caseContext(ctx context.Context, userID uuid.UUID) domain.CaseContext {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "case context lookup failed, using fallback",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return domain.GenericCaseContext()
	}
	return u.CaseContext()
}
