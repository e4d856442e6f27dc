package resrank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/resrank/internal/domain"
	"github.com/kailas-cloud/resrank/internal/domain/document"
	"github.com/kailas-cloud/resrank/internal/domain/relevance"
	"github.com/kailas-cloud/resrank/internal/extract"
	"github.com/kailas-cloud/resrank/internal/textproc"
	rankinguc "github.com/kailas-cloud/resrank/internal/usecase/ranking"
)

// Internal interfaces for substitution in tests.
type rankUseCase interface {
	Rank(ctx context.Context, query string, uploads []document.Upload) (rankinguc.Report, error)
}

type normalizer interface {
	Normalize(text string) string
}

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Ranker is the library entry point.
type Ranker struct {
	svc        rankUseCase
	normalizer normalizer
	health     healthChecker
	obs        *observer
}

// New loads the language resources and creates a Ranker.
func New(opts ...Option) (*Ranker, error) {
	cfg := &rankerConfig{
		maxDocuments:     rankinguc.DefaultMaxDocuments,
		maxDocumentBytes: rankinguc.DefaultMaxDocumentBytes,
		keywordLimit:     rankinguc.DefaultKeywordLimit,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	res, err := textproc.LoadResources()
	if err != nil {
		return nil, fmt.Errorf("resrank: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	norm := textproc.NewNormalizer(res)
	svc := rankinguc.New(extract.NewAuto(), norm).
		WithLimits(cfg.maxDocuments, cfg.maxDocumentBytes).
		WithKeywordLimit(cfg.keywordLimit)

	return &Ranker{svc: svc, normalizer: norm, health: res, obs: obs}, nil
}

// Rank scores every document against the job description and returns them
// ordered by relevance. Unreadable documents are skipped and listed in
// Ranking.Warnings; the returned Ranking carries the warnings even on error.
//
// Errors (use errors.Is):
//   - ErrInvalidRequest: blank job description, no documents, limits exceeded
//   - ErrNoReadableDocuments: no document had extractable text
//   - ErrDegenerateCorpus: nothing but stopwords and punctuation in all texts
func (r *Ranker) Rank(ctx context.Context, jobDescription string, docs ...Document) (ranking Ranking, err error) {
	start := time.Now()
	defer func() {
		r.obs.observe("rank", start, err,
			"run_id", ranking.RunID,
			"documents", len(docs),
			"unreadable", len(ranking.Warnings),
		)
	}()

	uploads := make([]document.Upload, 0, len(docs))
	for _, d := range docs {
		u, err := document.NewUpload(d.Name, d.Content)
		if err != nil {
			return Ranking{}, fmt.Errorf("resrank: %w: %w", domain.ErrInvalidRequest, err)
		}
		uploads = append(uploads, u)
	}

	rep, err := r.svc.Rank(ctx, jobDescription, uploads)
	ranking = rankingFromReport(&rep)
	if !errors.Is(err, domain.ErrInvalidRequest) {
		r.obs.observeDocuments(len(docs)-len(ranking.Warnings), len(ranking.Warnings))
	}
	if err != nil {
		return ranking, fmt.Errorf("resrank: %w", err)
	}
	return ranking, nil
}

// Score normalizes raw texts and returns the relevance of each candidate to
// the query, index-aligned with candidates.
func (r *Ranker) Score(query string, candidates ...string) (scores []float64, err error) {
	start := time.Now()
	defer func() { r.obs.observe("score", start, err, "candidates", len(candidates)) }()

	normCandidates := make([]string, len(candidates))
	for i, c := range candidates {
		normCandidates[i] = r.normalizer.Normalize(c)
	}
	scores, err = relevance.Score(r.normalizer.Normalize(query), normCandidates)
	if err != nil {
		return nil, fmt.Errorf("resrank: %w", err)
	}
	return scores, nil
}

// Normalize returns the canonical token string used for scoring.
func (r *Ranker) Normalize(text string) string {
	return r.normalizer.Normalize(text)
}

// HealthCheck verifies that the language resources are usable.
func (r *Ranker) HealthCheck(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { r.obs.observe("health", start, err) }()

	if err = r.health.HealthCheck(ctx); err != nil {
		return fmt.Errorf("resrank: health check: %w", err)
	}
	return nil
}
