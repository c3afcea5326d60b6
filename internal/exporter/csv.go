// Package exporter writes batches as delimited tabular files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"JMeterDataGen/internal/model"
)

// Header is the fixed column order of every export.
var Header = []string{"identifier", "password", "amount"}

// CSVExporter writes records one per row after a header row.
type CSVExporter struct {
	Delimiter rune
}

// NewCSVExporter returns an exporter using delim, or ',' when delim is zero.
func NewCSVExporter(delim rune) *CSVExporter {
	if delim == 0 {
		delim = ','
	}
	return &CSVExporter{Delimiter: delim}
}

// Write encodes batch to w. Amounts are written with exactly two decimals.
func (e *CSVExporter) Write(w io.Writer, batch model.Batch) error {
	cw := csv.NewWriter(w)
	if e.Delimiter != 0 {
		cw.Comma = e.Delimiter
	}

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(Header))
	for i, r := range batch {
		row[0] = r.Identifier
		row[1] = r.Password
		row[2] = r.Amount.StringFixed(2)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes batch to path, creating parent directories, and returns the file size.
func (e *CSVExporter) WriteFile(path string, batch model.Batch) (int64, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, &ExportError{Path: path, Op: "create", Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, &ExportError{Path: path, Op: "create", Err: err}
	}
	if err := e.Write(f, batch); err != nil {
		f.Close()
		return 0, &ExportError{Path: path, Op: "write", Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, &ExportError{Path: path, Op: "close", Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, &ExportError{Path: path, Op: "stat", Err: err}
	}
	return info.Size(), nil
}
