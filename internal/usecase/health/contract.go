package health

import "context"

// ResourceChecker checks that the language resources (stopwords, tokenizer) are loaded.
type ResourceChecker interface {
	HealthCheck(ctx context.Context) error
}

// ExtractorChecker checks that document extraction is operational.
type ExtractorChecker interface {
	HealthCheck(ctx context.Context) error
}
