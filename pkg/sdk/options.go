package resrank

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Ranker.
type Option interface {
	apply(*rankerConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*rankerConfig)

func (f optionFunc) apply(c *rankerConfig) { f(c) }

type rankerConfig struct {
	maxDocuments     int
	maxDocumentBytes int64
	keywordLimit     int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithMaxDocuments limits how many documents a single Rank call accepts.
// Default: 100.
func WithMaxDocuments(n int) Option {
	return optionFunc(func(c *rankerConfig) {
		c.maxDocuments = n
	})
}

// WithMaxDocumentBytes limits the size of each document.
// Default: 10MB.
func WithMaxDocumentBytes(n int64) Option {
	return optionFunc(func(c *rankerConfig) {
		c.maxDocumentBytes = n
	})
}

// WithKeywordLimit sets how many top keywords a Ranking carries (0 = all).
// Default: 50.
func WithKeywordLimit(n int) Option {
	return optionFunc(func(c *rankerConfig) {
		c.keywordLimit = n
	})
}

// WithLogger enables structured logging for ranking runs.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *rankerConfig) {
		c.logger = l
	})
}

// WithPrometheus registers ranker metrics (run counts, durations, document
// outcomes) on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *rankerConfig) {
		c.metricsReg = reg
	})
}
