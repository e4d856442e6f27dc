// Package ranking orders scored documents into a ranked result table.
package ranking

import (
	"fmt"
	"sort"
)

// Entry is a scored document (name, score) pair.
type Entry struct {
	name  string
	score float64
}

// NewEntry creates a score entry.
func NewEntry(name string, score float64) Entry {
	return Entry{name: name, score: score}
}

// Name returns the document display name.
func (e Entry) Name() string { return e.name }

// Score returns the full-precision relevance score.
func (e Entry) Score() float64 { return e.score }

// DisplayScore returns the score formatted with two decimals.
func (e Entry) DisplayScore() string { return FormatScore(e.score) }

// Ranked is a ranked entry: 1-based position plus the entry.
type Ranked struct {
	Entry
	rank int
}

// Rank returns the 1-based rank position.
func (r Ranked) Rank() int { return r.rank }

// Result is an ordered, ranked sequence of entries (score descending).
type Result []Ranked

// Rank sorts entries by score descending; ties keep upload order.
// The input slice is not modified.
func Rank(entries []Entry) Result {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})

	res := make(Result, len(sorted))
	for i, e := range sorted {
		res[i] = Ranked{Entry: e, rank: i + 1}
	}
	return res
}

// FromScores zips names with index-aligned scores.
func FromScores(names []string, scores []float64) ([]Entry, error) {
	if len(names) != len(scores) {
		return nil, fmt.Errorf("names/scores length mismatch: %d != %d", len(names), len(scores))
	}
	entries := make([]Entry, len(names))
	for i := range names {
		entries[i] = NewEntry(names[i], scores[i])
	}
	return entries, nil
}

// Top returns the rank-1 entry, or false when the result is empty.
func (r Result) Top() (Ranked, bool) {
	if len(r) == 0 {
		return Ranked{}, false
	}
	return r[0], true
}

// FormatScore renders a score with two decimals as shown in the results table.
func FormatScore(s float64) string {
	return fmt.Sprintf("%.2f", s)
}
