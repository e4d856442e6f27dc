// Package textproc turns raw document text into the canonical token string used for scoring.
package textproc

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/analysis"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/analysis/token/stop"
	unicodetok "github.com/blevesearch/bleve/analysis/tokenizer/unicode"

	"github.com/kailas-cloud/resrank/internal/domain"
)

// Resources is the process-wide, read-only language data used by the Normalizer:
// the English stopword set and a Unicode word tokenizer.
// Load once at startup and share; all methods are safe for concurrent use.
type Resources struct {
	stopwords analysis.TokenMap
	tokenizer analysis.Tokenizer
	stopper   analysis.TokenFilter
}

// LoadResources loads the English stopword list and the word tokenizer.
func LoadResources() (*Resources, error) {
	stopwords := analysis.NewTokenMap()
	if err := stopwords.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("%w: load english stopwords: %w", domain.ErrResourcesUnavailable, err)
	}
	if len(stopwords) == 0 {
		return nil, fmt.Errorf("%w: english stopword list is empty", domain.ErrResourcesUnavailable)
	}

	return &Resources{
		stopwords: stopwords,
		tokenizer: unicodetok.NewUnicodeTokenizer(),
		stopper:   stop.NewStopTokensFilter(stopwords),
	}, nil
}

// IsStopword reports whether a lowercased term is in the stopword set.
func (r *Resources) IsStopword(term string) bool {
	_, ok := r.stopwords[term]
	return ok
}

// StopwordCount returns the number of loaded stopwords.
func (r *Resources) StopwordCount() int { return len(r.stopwords) }

// HealthCheck verifies that resources are loaded and the tokenizer works.
func (r *Resources) HealthCheck(_ context.Context) error {
	if r == nil || len(r.stopwords) == 0 {
		return domain.ErrResourcesUnavailable
	}
	if len(r.tokenizer.Tokenize([]byte("health check"))) != 2 {
		return fmt.Errorf("%w: tokenizer self-test failed", domain.ErrResourcesUnavailable)
	}
	return nil
}
