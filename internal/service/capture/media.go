package capture

import (
	"fmt"
	"strings"

	"github.com/casetrail/casetrail-backend/internal/domain"
)

// preferredAudioContainers is the order in which the pipeline wants audio
// delivered. Recording capability varies by client; the transcription
// collaborator accepts exactly this set.
var preferredAudioContainers = []string{
	"audio/webm",
	"audio/mp4",
	"audio/mpeg",
	"audio/ogg",
	"audio/wav",
}

// PickAudioContainer chooses the first preferred container the client can
// produce. When none match, the client's own default (first candidate) is
// used so recording still works on unusual platforms.
func PickAudioContainer(candidates []string) string {
	if len(candidates) == 0 {
		return preferredAudioContainers[0]
	}
	for _, want := range preferredAudioContainers {
		for _, have := range candidates {
			if normalizeContainer(have) == want {
				return have
			}
		}
	}
	return candidates[0]
}

// normalizeContainer strips codec parameters: "audio/webm;codecs=opus"
// matches "audio/webm".
func normalizeContainer(mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return mt
}

// validateInput enforces the media intake contract: at least one input
// present, text non-empty after trimming, audio recognizably audio, images
// recognizably images and within the size cap. Validation runs before any
// external call is made.
func (s *Service) validateInput(in *domain.CaptureInput) error {
	in.NarrativeText = strings.TrimSpace(in.NarrativeText)
	in.UserAnnotation = strings.TrimSpace(in.UserAnnotation)

	if in.NarrativeText == "" && in.Audio == nil && len(in.Images) == 0 {
		return domain.NewValidationError("input", "at least one of text, audio, or images is required")
	}

	if in.Audio != nil {
		if len(in.Audio.Data) == 0 {
			return domain.NewValidationError("audio", "audio data is empty")
		}
		if int64(len(in.Audio.Data)) > s.media.MaxAudioBytes {
			return domain.NewValidationError("audio",
				fmt.Sprintf("audio exceeds %d bytes", s.media.MaxAudioBytes))
		}
		if kind := domain.ClassifyMIME(in.Audio.MimeType); kind != domain.MediaKindAudio {
			return domain.NewValidationError("audio",
				fmt.Sprintf("unsupported audio type %q", in.Audio.MimeType))
		}
	}

	for i, img := range in.Images {
		if len(img.Data) == 0 {
			return domain.NewValidationError("images", fmt.Sprintf("image %d is empty", i))
		}
		if int64(len(img.Data)) > s.media.MaxImageBytes {
			return domain.NewValidationError("images",
				fmt.Sprintf("image %d exceeds %d bytes", i, s.media.MaxImageBytes))
		}
		if kind := domain.ClassifyMIME(img.MimeType); kind != domain.MediaKindImage {
			return domain.NewValidationError("images",
				fmt.Sprintf("unsupported image type %q", img.MimeType))
		}
	}

	return nil
}
