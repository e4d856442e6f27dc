package resrank

import "github.com/kailas-cloud/resrank/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidRequest       = domain.ErrInvalidRequest
	ErrUnreadableDocument   = domain.ErrUnreadableDocument
	ErrNoReadableDocuments  = domain.ErrNoReadableDocuments
	ErrNoCandidates         = domain.ErrNoCandidates
	ErrDegenerateCorpus     = domain.ErrDegenerateCorpus
	ErrResourcesUnavailable = domain.ErrResourcesUnavailable
)
