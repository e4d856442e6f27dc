package ranking

import (
	"time"

	"github.com/kailas-cloud/resrank/internal/domain/document"
)

// Extractor turns raw upload bytes into text or an unreadable marker.
type Extractor interface {
	Extract(content []byte) document.Extracted
}

// Normalizer maps raw text onto the normalized token string.
type Normalizer interface {
	Normalize(text string) string
}

// RunObserver records the outcome of a ranking run (metrics).
type RunObserver interface {
	ObserveRun(status RunStatus, readable, unreadable int, duration time.Duration)
}
