package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kailas-cloud/resrank/internal/domain/keyword"
	"github.com/kailas-cloud/resrank/internal/domain/ranking"
)

// WriteTable prints an aligned Rank/Resume/Score table.
func WriteTable(w io.Writer, res ranking.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tRESUME\tSCORE")
	for _, r := range res {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Rank(), r.Name(), r.DisplayScore())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

// WriteKeywords prints term/count pairs, one per line.
func WriteKeywords(w io.Writer, freqs []keyword.Frequency) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEYWORD\tCOUNT")
	for _, f := range freqs {
		fmt.Fprintf(tw, "%s\t%d\n", f.Term, f.Count)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush keywords: %w", err)
	}
	return nil
}
