package relevance

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/resrank/internal/domain"
)

// Score computes the relevance of each candidate to the query.
// Both query and candidates must already be normalized. The corpus is
// [query] ++ candidates and the vocabulary is rebuilt on every call.
// Scores are index-aligned with candidates and lie in [0, 1].
func Score(query string, candidates []string) ([]float64, error) {
	if len(candidates) == 0 {
		return nil, domain.ErrNoCandidates
	}

	corpus := make([][]string, 0, len(candidates)+1)
	corpus = append(corpus, Tokens(query))
	for _, c := range candidates {
		corpus = append(corpus, Tokens(c))
	}

	v, err := Fit(corpus)
	if err != nil {
		return nil, fmt.Errorf("fit vectorizer over %d documents: %w", len(corpus), err)
	}

	q := v.Transform(corpus[0])
	scores := make([]float64, len(candidates))
	for i, doc := range corpus[1:] {
		scores[i] = CosineSimilarity(q, v.Transform(doc))
	}
	return scores, nil
}

// CosineSimilarity returns the cosine of the angle between a and b, clamped to [0, 1].
// Zero vectors and length mismatches yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	s := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return min(max(s, 0), 1)
}
