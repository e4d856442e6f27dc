package resrank

import (
	"context"

	"github.com/kailas-cloud/resrank/internal/domain/document"
	rankinguc "github.com/kailas-cloud/resrank/internal/usecase/ranking"
)

// --- rankUseCase mock ---

type mockRankUC struct {
	rankFn func(ctx context.Context, query string, uploads []document.Upload) (rankinguc.Report, error)
}

func (m *mockRankUC) Rank(ctx context.Context, query string, uploads []document.Upload) (rankinguc.Report, error) {
	return m.rankFn(ctx, query, uploads)
}

// --- healthChecker mock ---

type mockHealth struct {
	err error
}

func (m *mockHealth) HealthCheck(_ context.Context) error { return m.err }

// --- normalizer mock ---

type identityNormalizer struct{}

func (identityNormalizer) Normalize(text string) string { return text }
