// Package report renders ranked results as CSV and as a plain text table.
package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/kailas-cloud/resrank/internal/domain/ranking"
)

// Filename is the suggested download name for CSV exports.
const Filename = "ranking_results.csv"

// Header is the CSV header row.
var Header = []string{"Rank", "Resume", "Score"}

// ErrMalformedCSV is returned by ReadCSV for input that is not a ranking export.
var ErrMalformedCSV = errors.New("malformed ranking csv")

// Row is one parsed CSV record.
type Row struct {
	Rank   int
	Resume string
	Score  float64
}

// WriteCSV writes the header and one record per ranked entry.
// Scores are written with two decimals, as in the results table.
func WriteCSV(w io.Writer, res ranking.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range res {
		if err := cw.Write([]string{strconv.Itoa(r.Rank()), r.Name(), r.DisplayScore()}); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.Rank(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// CSV returns the export as bytes.
func CSV(res ranking.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadCSV parses an export produced by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedCSV)
	}
	for i, h := range Header {
		if records[0][i] != h {
			return nil, fmt.Errorf("%w: header column %d is %q, want %q", ErrMalformedCSV, i+1, records[0][i], h)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		rank, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: rank %q", ErrMalformedCSV, line, rec[0])
		}
		score, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: score %q", ErrMalformedCSV, line, rec[2])
		}
		rows = append(rows, Row{Rank: rank, Resume: rec[1], Score: score})
	}
	return rows, nil
}
