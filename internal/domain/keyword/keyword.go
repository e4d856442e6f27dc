// Package keyword counts term frequencies for the keyword cloud.
package keyword

import (
	"sort"
	"strings"
)

// Frequency is a term with its occurrence count.
type Frequency struct {
	Term  string
	Count int
}

// Count tallies tokens across normalized texts and returns the top `limit`
// terms by count, ties ordered alphabetically. limit <= 0 returns all terms.
func Count(texts []string, limit int) []Frequency {
	counts := make(map[string]int)
	for _, t := range texts {
		for _, tok := range strings.Fields(t) {
			counts[tok]++
		}
	}

	out := make([]Frequency, 0, len(counts))
	for term, n := range counts {
		out = append(out, Frequency{Term: term, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Weight scales a frequency into [minWeight, 1] relative to the most frequent term.
// Used to size terms in the rendered cloud.
func Weight(f Frequency, maxCount int, minWeight float64) float64 {
	if maxCount <= 0 {
		return minWeight
	}
	w := float64(f.Count) / float64(maxCount)
	return minWeight + (1-minWeight)*w
}
