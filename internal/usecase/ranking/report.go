package ranking

import (
	"github.com/kailas-cloud/resrank/internal/domain/keyword"
	domrank "github.com/kailas-cloud/resrank/internal/domain/ranking"
)

// RunStatus is the outcome label of a ranking run.
type RunStatus string

// Run outcomes.
const (
	StatusOK          RunStatus = "ok"
	StatusInvalid     RunStatus = "invalid"
	StatusNoReadable  RunStatus = "no_readable"
	StatusDegenerate  RunStatus = "degenerate"
	StatusInternalErr RunStatus = "error"
)

// Warning reports an upload that was skipped because it had no usable text.
type Warning struct {
	Name string
	Err  error
}

// Message returns a user-facing warning line.
func (w Warning) Message() string {
	return "Could not read " + w.Name + ": " + w.Err.Error()
}

// Report is the outcome of a single ranking run.
type Report struct {
	RunID    string
	Results  domrank.Result
	Warnings []Warning
	Keywords []keyword.Frequency
}

// Top returns the best-ranked entry, or false when nothing was ranked.
func (r *Report) Top() (domrank.Ranked, bool) {
	return r.Results.Top()
}
