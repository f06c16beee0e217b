package domain

import "strings"

// MediaKind is the closed classification of an uploaded file's MIME type.
// Every caller must handle MediaKindUnknown explicitly; there is no implicit
// default.
type MediaKind string

const (
	MediaKindAudio    MediaKind = "audio"
	MediaKindImage    MediaKind = "image"
	MediaKindVideo    MediaKind = "video"
	MediaKindDocument MediaKind = "document"
	MediaKindUnknown  MediaKind = "unknown"
)

func (k MediaKind) String() string { return string(k) }

// documentMIMETypes are MIME types classified as documents even though they
// do not share a common top-level family.
var documentMIMETypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
	"text/csv":   {},
}

// ClassifyMIME maps a MIME type onto a MediaKind. Parameters after ";" are
// ignored. Unrecognized families classify as MediaKindUnknown rather than
// falling through to any concrete kind.
func ClassifyMIME(mimeType string) MediaKind {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if mt == "" {
		return MediaKindUnknown
	}

	if _, ok := documentMIMETypes[mt]; ok {
		return MediaKindDocument
	}

	family, _, ok := strings.Cut(mt, "/")
	if !ok {
		return MediaKindUnknown
	}

	switch family {
	case "audio":
		return MediaKindAudio
	case "image":
		return MediaKindImage
	case "video":
		return MediaKindVideo
	default:
		return MediaKindUnknown
	}
}

// SourceTypeForMedia maps a MediaKind onto the evidence source type used when
// the captured file itself is persisted as evidence.
func SourceTypeForMedia(kind MediaKind) EvidenceSourceType {
	switch kind {
	case MediaKindImage:
		return SourceTypePhoto
	case MediaKindAudio, MediaKindVideo:
		return SourceTypeRecording
	case MediaKindDocument:
		return SourceTypeDocument
	case MediaKindUnknown:
		return SourceTypeOther
	default:
		return SourceTypeOther
	}
}
