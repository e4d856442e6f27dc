// Package relevance scores candidate texts against a query with TF-IDF vectors and cosine similarity.
package relevance

import (
	"math"
	"sort"
	"strings"

	"github.com/kailas-cloud/resrank/internal/domain"
)

// Vectorizer maps token lists onto TF-IDF vectors over a fixed vocabulary.
// Weights: raw term count * smoothed idf, rows L2-normalized.
type Vectorizer struct {
	vocabulary map[string]int
	terms      []string
	idf        []float64
}

// Fit builds the vocabulary and idf weights from a corpus of token lists.
// Returns domain.ErrDegenerateCorpus when no document contributes a single term.
func Fit(docs [][]string) (*Vectorizer, error) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, domain.ErrDegenerateCorpus
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		terms:      terms,
		idf:        make([]float64, len(terms)),
	}
	for i, t := range terms {
		v.vocabulary[t] = i
		// idf = ln((1 + n) / (1 + df)) + 1
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v, nil
}

// Terms returns the vocabulary in column order.
func (v *Vectorizer) Terms() []string { return v.terms }

// Transform converts tokens into an L2-normalized TF-IDF vector.
// Tokens outside the vocabulary are ignored; an empty input yields the zero vector.
func (v *Vectorizer) Transform(tokens []string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, tok := range tokens {
		if idx, ok := v.vocabulary[tok]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i, tf := range vec {
		if tf == 0 {
			continue
		}
		vec[i] = tf * v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Tokens splits a normalized string into its terms.
func Tokens(normalized string) []string {
	return strings.Fields(normalized)
}
