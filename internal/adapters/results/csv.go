package results

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/okian/fungo/internal/domain/model"
)

// grandTotalLabel marks the closing summary row of a sweep CSV.
const grandTotalLabel = "GRAND_TOTAL_RUNS"

// CSVWriter appends one row per evaluated lineup to a summary file and
// closes with a grand-total row. Not safe for concurrent use; the sweep
// serializes writes.
type CSVWriter struct {
	f *os.File
	w *csv.Writer
}

// NewCSVWriter creates (truncating) the summary file and writes the
// header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteResults, err)
	}

	w := csv.NewWriter(f)
	header := make([]string, 0, model.LineupSize+1)
	for i := 1; i <= model.LineupSize; i++ {
		header = append(header, fmt.Sprintf("P%d_ID", i))
	}
	header = append(header, "AverageScore")
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %v", ErrWriteResults, err)
	}
	w.Flush()
	return &CSVWriter{f: f, w: w}, nil
}

// Append writes one lineup row. Rows are flushed as they are written so a
// partial sweep still leaves usable output.
func (c *CSVWriter) Append(order []string, averageScore float64) error {
	if len(order) != model.LineupSize {
		return fmt.Errorf("%w: row needs %d player ids, got %d", ErrWriteResults, model.LineupSize, len(order))
	}
	row := make([]string, 0, model.LineupSize+1)
	row = append(row, order...)
	row = append(row, fmt.Sprintf("%.4f", averageScore))
	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteResults, err)
	}
	c.w.Flush()
	return c.w.Error()
}

// Close writes the grand-total row and closes the file. grandTotal is the
// sum of runs across all lineups and games.
func (c *CSVWriter) Close(grandTotal float64) error {
	row := make([]string, model.LineupSize+1)
	row[0] = grandTotalLabel
	row[model.LineupSize] = fmt.Sprintf("%.0f", grandTotal)
	if err := c.w.Write(row); err != nil {
		_ = c.f.Close()
		return fmt.Errorf("%w: %v", ErrWriteResults, err)
	}
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		_ = c.f.Close()
		return fmt.Errorf("%w: %v", ErrWriteResults, err)
	}
	if err := c.f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteResults, err)
	}
	return nil
}
