package ranking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/resrank/internal/domain"
	"github.com/kailas-cloud/resrank/internal/domain/document"
	"github.com/kailas-cloud/resrank/internal/domain/keyword"
	domrank "github.com/kailas-cloud/resrank/internal/domain/ranking"
	"github.com/kailas-cloud/resrank/internal/domain/relevance"
	logpkg "github.com/kailas-cloud/resrank/internal/logger"
)

// Defaults applied when limits are not configured.
const (
	DefaultMaxDocuments     = 100
	DefaultMaxDocumentBytes = 10 << 20 // 10MB
	DefaultKeywordLimit     = 50
)

// Service ranks a batch of uploaded documents against a job description.
// Each call is self-contained: nothing is shared between runs except the
// read-only extractor and normalizer.
type Service struct {
	extractor        Extractor
	normalizer       Normalizer
	observer         RunObserver
	maxDocuments     int
	maxDocumentBytes int64
	keywordLimit     int
	newRunID         func() string
}

// New creates a ranking service.
func New(extractor Extractor, normalizer Normalizer) *Service {
	return &Service{
		extractor:        extractor,
		normalizer:       normalizer,
		maxDocuments:     DefaultMaxDocuments,
		maxDocumentBytes: DefaultMaxDocumentBytes,
		keywordLimit:     DefaultKeywordLimit,
		newRunID:         func() string { return uuid.NewString() },
	}
}

// WithLimits configures the batch size and per-document size limits.
func (s *Service) WithLimits(maxDocuments int, maxDocumentBytes int64) *Service {
	if maxDocuments > 0 {
		s.maxDocuments = maxDocuments
	}
	if maxDocumentBytes > 0 {
		s.maxDocumentBytes = maxDocumentBytes
	}
	return s
}

// WithKeywordLimit configures how many keywords the report carries (0 = all).
func (s *Service) WithKeywordLimit(n int) *Service {
	if n >= 0 {
		s.keywordLimit = n
	}
	return s
}

// WithObserver attaches a run observer (metrics).
func (s *Service) WithObserver(o RunObserver) *Service {
	s.observer = o
	return s
}

// Rank extracts, normalizes and scores every upload against the query and
// returns the ranked report. Unreadable uploads are skipped with a warning.
//
// Errors:
//   - domain.ErrInvalidRequest: blank query, no uploads, limits exceeded
//   - domain.ErrNoReadableDocuments: every upload was unreadable
//   - domain.ErrDegenerateCorpus: nothing vectorizable in query and documents
func (s *Service) Rank(ctx context.Context, query string, uploads []document.Upload) (Report, error) {
	start := time.Now()
	runID := s.newRunID()
	log := logpkg.FromContext(ctx).With(zap.String("run_id", runID))

	report, err := s.rank(log, runID, query, uploads)

	status := statusOf(err)
	unreadable := len(report.Warnings)
	readable := 0
	if status != StatusInvalid {
		readable = len(uploads) - unreadable
	}
	if s.observer != nil {
		s.observer.ObserveRun(status, readable, unreadable, time.Since(start))
	}

	if err != nil {
		log.Warn("ranking_failed",
			zap.String("status", string(status)),
			zap.Int("uploads", len(uploads)),
			zap.Int("unreadable", unreadable),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return report, err
	}

	fields := []zap.Field{
		zap.Int("uploads", len(uploads)),
		zap.Int("ranked", len(report.Results)),
		zap.Int("unreadable", unreadable),
		zap.Duration("latency", time.Since(start)),
	}
	if top, ok := report.Top(); ok {
		fields = append(fields, zap.String("top", top.Name()), zap.Float64("top_score", top.Score()))
	}
	log.Info("ranking_completed", fields...)
	return report, nil
}

func (s *Service) rank(log *zap.Logger, runID, query string, uploads []document.Upload) (Report, error) {
	report := Report{RunID: runID}

	if err := s.validate(query, uploads); err != nil {
		return report, err
	}

	names := make([]string, 0, len(uploads))
	texts := make([]string, 0, len(uploads))
	for _, u := range uploads {
		ext := s.extractor.Extract(u.Content())
		if !ext.Readable() {
			log.Warn("document_unreadable",
				zap.String("document", u.Name()),
				zap.String("reason", ext.Reason()),
			)
			report.Warnings = append(report.Warnings, Warning{Name: u.Name(), Err: ext.Err()})
			continue
		}
		names = append(names, u.Name())
		texts = append(texts, ext.Text())
	}
	if len(texts) == 0 {
		return report, fmt.Errorf("%w: all %d uploads were unreadable, please re-upload text-based documents",
			domain.ErrNoReadableDocuments, len(uploads))
	}

	normQuery := s.normalizer.Normalize(query)
	normDocs := make([]string, len(texts))
	for i, t := range texts {
		normDocs[i] = s.normalizer.Normalize(t)
	}

	scores, err := relevance.Score(normQuery, normDocs)
	if err != nil {
		return report, fmt.Errorf("score documents: %w", err)
	}

	entries, err := domrank.FromScores(names, scores)
	if err != nil {
		return report, fmt.Errorf("assemble results: %w", err)
	}
	report.Results = domrank.Rank(entries)
	report.Keywords = keyword.Count(normDocs, s.keywordLimit)
	return report, nil
}

func (s *Service) validate(query string, uploads []document.Upload) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: job description is required", domain.ErrInvalidRequest)
	}
	if len(uploads) == 0 {
		return fmt.Errorf("%w: at least one document is required", domain.ErrInvalidRequest)
	}
	if len(uploads) > s.maxDocuments {
		return domain.NewLimitError("document count", int64(s.maxDocuments), int64(len(uploads)))
	}
	for _, u := range uploads {
		if int64(u.Size()) > s.maxDocumentBytes {
			return fmt.Errorf("document %q: %w", u.Name(),
				domain.NewLimitError("document size", s.maxDocumentBytes, int64(u.Size())))
		}
	}
	return nil
}

func statusOf(err error) RunStatus {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, domain.ErrInvalidRequest):
		return StatusInvalid
	case errors.Is(err, domain.ErrNoReadableDocuments):
		return StatusNoReadable
	case errors.Is(err, domain.ErrDegenerateCorpus):
		return StatusDegenerate
	default:
		return StatusInternalErr
	}
}
