package review

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the review pipeline can surface.
type ErrorKind int

const (
	ErrInvalidFileType ErrorKind = iota
	ErrUnsupportedFileType
	ErrFileReadFailed
	ErrEmptyDocument
	ErrDocumentTooLarge
	ErrMissingStance
	ErrMissingAPIKey
	ErrInvalidEndpoint
	ErrService
	ErrDecodeFailed
)

// Error is the typed domain error for the review pipeline.
type Error struct {
	Kind    ErrorKind
	Message string

	// Extension is set for ErrUnsupportedFileType.
	Extension string
	// EstimatedTokens and TokenLimit are set for ErrDocumentTooLarge.
	EstimatedTokens int
	TokenLimit      int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidFileType:
		return "file has no recognizable type"
	case ErrUnsupportedFileType:
		return fmt.Sprintf("unsupported file type %q", e.Extension)
	case ErrFileReadFailed:
		return "failed to read file"
	case ErrEmptyDocument:
		return "document contains no text"
	case ErrDocumentTooLarge:
		return fmt.Sprintf("document too large: estimated %d tokens, limit %d", e.EstimatedTokens, e.TokenLimit)
	case ErrMissingStance:
		return "review stance is required"
	case ErrMissingAPIKey:
		return "API key is not configured"
	case ErrInvalidEndpoint:
		return "API base URL is invalid"
	case ErrService:
		return e.Message
	case ErrDecodeFailed:
		return "failed to decode model response"
	}
	return e.Message
}

// NewError builds an Error of the given kind. message is optional detail,
// kept for logs; the user-facing text comes from Error().
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NewServiceError(message string) *Error {
	return &Error{Kind: ErrService, Message: message}
}

func NewUnsupportedFileType(ext string) *Error {
	return &Error{Kind: ErrUnsupportedFileType, Extension: ext}
}

func NewDocumentTooLarge(estimated, limit int) *Error {
	return &Error{Kind: ErrDocumentTooLarge, EstimatedTokens: estimated, TokenLimit: limit}
}

// KindOf reports the ErrorKind of err. ok is false when err is not a
// review error.
func KindOf(err error) (ErrorKind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}

// IsStructural reports whether err is a configuration or input problem
// rather than a per-stage service failure. Structural errors are surfaced
// verbatim and never annotated with a stage name.
func IsStructural(err error) bool {
	kind, ok := KindOf(err)
	if !ok {
		return false
	}
	switch kind {
	case ErrService:
		return false
	default:
		return true
	}
}
