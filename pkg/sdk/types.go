package resrank

import (
	"fmt"
	"io"

	domrank "github.com/kailas-cloud/resrank/internal/domain/ranking"
	"github.com/kailas-cloud/resrank/internal/report"
	rankinguc "github.com/kailas-cloud/resrank/internal/usecase/ranking"
)

// Document is a candidate document: a display name and raw bytes (PDF or UTF-8 text).
type Document struct {
	Name    string
	Content []byte
}

// Result is one row of the ranking table.
type Result struct {
	Rank  int // 1-based
	Name  string
	Score float64 // cosine similarity in [0, 1]
}

// DisplayScore returns the score with two decimals.
func (r Result) DisplayScore() string { return domrank.FormatScore(r.Score) }

// Warning reports a document that was skipped because no text could be extracted.
type Warning struct {
	Name   string
	Reason string
}

// Keyword is a term with its frequency across the readable documents.
type Keyword struct {
	Term  string
	Count int
}

// Ranking is the outcome of a Rank call.
type Ranking struct {
	RunID    string
	Results  []Result
	Warnings []Warning
	Keywords []Keyword

	ranked domrank.Result
}

// Top returns the best-ranked document, or false when nothing was ranked.
func (r *Ranking) Top() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	return r.Results[0], true
}

// WriteCSV writes the results as CSV with a Rank,Resume,Score header.
func (r *Ranking) WriteCSV(w io.Writer) error {
	if err := report.WriteCSV(w, r.ranked); err != nil {
		return fmt.Errorf("resrank: %w", err)
	}
	return nil
}

// WriteTable writes the results as an aligned text table.
func (r *Ranking) WriteTable(w io.Writer) error {
	if err := report.WriteTable(w, r.ranked); err != nil {
		return fmt.Errorf("resrank: %w", err)
	}
	return nil
}

func rankingFromReport(rep *rankinguc.Report) Ranking {
	out := Ranking{
		RunID:  rep.RunID,
		ranked: rep.Results,
	}
	if len(rep.Results) > 0 {
		out.Results = make([]Result, len(rep.Results))
		for i, r := range rep.Results {
			out.Results[i] = Result{Rank: r.Rank(), Name: r.Name(), Score: r.Score()}
		}
	}
	for _, w := range rep.Warnings {
		out.Warnings = append(out.Warnings, Warning{Name: w.Name, Reason: w.Err.Error()})
	}
	for _, k := range rep.Keywords {
		out.Keywords = append(out.Keywords, Keyword{Term: k.Term, Count: k.Count})
	}
	return out
}
