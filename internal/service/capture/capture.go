package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/casetrail/casetrail-backend/internal/domain"
	"github.com/casetrail/casetrail-backend/internal/service/extraction"
	"github.com/casetrail/casetrail-backend/pkg/ctxutil"
)

// Capture runs the synchronous pipeline: validate, gate, transcribe,
// extract, persist. The usage gate runs before any paid collaborator call
// so a denied request spends no model tokens.
func (s *Service) Capture(ctx context.Context, in domain.CaptureInput) (*domain.CaptureResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.validateInput(&in); err != nil {
		return nil, err
	}

	if err := s.gate.CheckCanCapture(ctx, userID); err != nil {
		return nil, err
	}

	// Captured images become evidence rows, so the evidence cap is checked
	// here too, before any collaborator is paid.
	if len(in.Images) > 0 {
		if err := s.gate.CheckCanAddEvidence(ctx, userID); err != nil {
			return nil, err
		}
	}

	out, _, err := s.run(ctx, userID, in)
	return out, err
}

// run executes the gated part of the pipeline. The worker calls it directly
// for async jobs whose gate check already happened at submission. The raw
// extraction JSON is returned for callers that persist an audit payload.
func (s *Service) run(ctx context.Context, userID uuid.UUID, in domain.CaptureInput) (*domain.CaptureResult, json.RawMessage, error) {
	narrative, err := s.assembleNarrative(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	// Resolve supplied evidence before anything is written: a foreign or
	// unknown id fails the capture without producing a single row.
	wanted := dedupeIDs(in.EvidenceIDs)
	supplied, err := s.evidence.ResolveOwned(ctx, userID, wanted)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve evidence: %w", err)
	}
	if len(supplied) != len(wanted) {
		return nil, nil, fmt.Errorf("evidence: %w", domain.ErrNotFound)
	}

	// Captured images become evidence rows before extraction runs; uploads
	// are sequential to bound load on the storage backend.
	captured, err := s.storeImages(ctx, userID, in)
	if err != nil {
		return nil, nil, err
	}

	reference := time.Now().UTC()
	if in.ReferenceDate != nil {
		reference = *in.ReferenceDate
	}

	var image *domain.MediaBlob
	if len(in.Images) > 0 {
		image = &in.Images[0]
	}

	result, err := s.extractor.Extract(ctx, extraction.Input{
		Narrative:                narrative,
		Image:                    image,
		Annotation:               in.UserAnnotation,
		Context:                  s.caseContext(ctx, userID),
		Reference:                reference,
		ReferenceTimeDescription: in.ReferenceTimeDescription,
	})
	if err != nil {
		return nil, nil, err
	}

	linkIDs := append(append([]uuid.UUID{}, supplied...), captured...)

	out, err := s.persist(ctx, userID, result, linkIDs, captured)
	if err != nil {
		return nil, nil, err
	}

	s.log.InfoContext(ctx, "capture committed",
		slog.String("user_id", userID.String()),
		slog.Int("events", len(out.EventIDs)),
		slog.Int("communications", len(out.CommunicationIDs)),
		slog.Int("evidence", len(out.EvidenceIDs)),
	)

	return out, result.Raw, nil
}

// assembleNarrative merges typed text with the audio transcript. An empty
// transcript is a soft failure: the capture proceeds when any other input
// exists.
func (s *Service) assembleNarrative(ctx context.Context, in domain.CaptureInput) (string, error) {
	narrative := in.NarrativeText

	if in.Audio == nil {
		return narrative, nil
	}

	transcript, err := s.stt.Transcribe(ctx, in.Audio.Data, normalizeContainer(in.Audio.MimeType))
	if err != nil {
		return "", err
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		if narrative == "" && len(in.Images) == 0 {
			return "", domain.NewValidationError("audio", "audio produced no transcript")
		}
		s.log.WarnContext(ctx, "empty transcript, proceeding with remaining input")
		return narrative, nil
	}

	if narrative == "" {
		return transcript, nil
	}
	return narrative + "\n\n" + transcript, nil
}

// storeImages uploads each captured image and creates its evidence row.
// Uploads run sequentially to bound load on the storage backend.
func (s *Service) storeImages(ctx context.Context, userID uuid.UUID, in domain.CaptureInput) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	for i := range in.Images {
		img := in.Images[i]
		id := uuid.New()

		// A nameless multipart part stays NULL in original_filename; the
		// storage path still needs a stand-in.
		var origName *string
		if img.Filename != "" {
			origName = &img.Filename
		}
		filename := img.Filename
		if filename == "" {
			filename = "capture.img"
		}
		path := fmt.Sprintf("%s/%s-%s", userID, id, filename)

		if err := s.store.Upload(ctx, path, img.Data, img.MimeType); err != nil {
			return nil, fmt.Errorf("upload image %d: %w", i, err)
		}

		summary := in.UserAnnotation
		if summary == "" {
			summary = "Captured image"
		}

		ev, err := s.evidence.Create(ctx, userID, &domain.Evidence{
			ID:               id,
			SourceType:       domain.SourceTypeForMedia(domain.ClassifyMIME(img.MimeType)),
			StoragePath:      &path,
			OriginalFilename: origName,
			MimeType:         &img.MimeType,
			Summary:          summary,
			CreatedAt:        time.Now().UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("create evidence for image %d: %w", i, err)
		}

		ids = append(ids, ev.ID)
	}

	return ids, nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
