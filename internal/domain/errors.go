package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest signals a malformed ranking request (blank query, no uploads, limits exceeded).
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnreadableDocument signals an upload with no extractable text.
	ErrUnreadableDocument = errors.New("unreadable document")
	// ErrNoReadableDocuments signals that every upload in the batch was unreadable.
	ErrNoReadableDocuments = errors.New("no readable documents")
	// ErrNoCandidates signals a scoring call without candidate documents.
	ErrNoCandidates = errors.New("no candidate documents")
	// ErrDegenerateCorpus signals a corpus without any vectorizable term.
	ErrDegenerateCorpus = errors.New("empty vocabulary: documents contain only stopwords or punctuation")

	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
	// ErrUnauthorized signals a missing or invalid API key.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrResourcesUnavailable signals that language resources failed to load.
	ErrResourcesUnavailable = errors.New("language resources unavailable")
)

// LimitError wraps ErrInvalidRequest with the limit that was exceeded.
type LimitError struct {
	What  string
	Limit int64
	Got   int64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %s exceeds limit %d (got %d)", ErrInvalidRequest.Error(), e.What, e.Limit, e.Got)
}

func (e *LimitError) Unwrap() error { return ErrInvalidRequest }

// NewLimitError creates a limit violation error.
func NewLimitError(what string, limit, got int64) error {
	return &LimitError{What: what, Limit: limit, Got: got}
}
