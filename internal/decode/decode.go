// Package decode reads uploaded tabular files into row records. Only the
// first sheet or table of a file is read; a header row is required. Decoding
// failures are returned as errors before any metrics run, so a corrupt file
// never reaches the engine.
package decode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"payment-metrics-lab/internal/domain"
)

// Format identifies a supported input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnsupportedFormat is returned for file extensions the decoder does not
// handle.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// FormatForFilename maps a filename extension to a decode format.
func FormatForFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm", ".xltx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// DecodeFile reads the file at path into row records, picking the format from
// the filename extension.
func DecodeFile(path string) ([]domain.Record, error) {
	format, err := FormatForFilename(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeReader(f, format)
}

// DecodeReader reads one table from r in the given format.
func DecodeReader(r io.Reader, format Format) ([]domain.Record, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(r)
	case FormatXLSX:
		return decodeXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// inferValue applies dynamic typing to a raw cell: numeric-looking cells
// become float64, true/false become bool, everything else stays a string.
// Matches the typing the dashboard's previous decoder applied.
func inferValue(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// buildRecord zips a header with one data row, skipping empty cells so that
// absence stays distinguishable from zero.
func buildRecord(header []string, cells []string) domain.Record {
	rec := make(domain.Record, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if col == "" || i >= len(cells) {
			continue
		}
		if v := inferValue(cells[i]); v != nil {
			rec[col] = v
		}
	}
	return rec
}
