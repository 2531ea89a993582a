package decode

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"payment-metrics-lab/internal/domain"
)

// ErrNoHeader is returned when a delimited file has no header row.
var ErrNoHeader = errors.New("delimited file has no header row")

// sniffDelimiter picks the delimiter with the most occurrences in the header
// line, ignoring anything inside quoted fields. Comma wins ties, so plain CSV
// never mis-sniffs.
func sniffDelimiter(header string) rune {
	counts := make(map[rune]int)
	inQuotes := false
	for _, r := range header {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case inQuotes:
		case r == ',' || r == ';' || r == '\t' || r == '|':
			counts[r]++
		}
	}

	best, bestCount := ',', counts[',']
	for _, cand := range []rune{';', '\t', '|'} {
		if counts[cand] > bestCount {
			best, bestCount = cand, counts[cand]
		}
	}
	return best
}

// decodeCSV reads a delimited file with a header row. The delimiter is
// sniffed from the header line; ragged rows are tolerated and fully empty
// lines are skipped.
func decodeCSV(r io.Reader) ([]domain.Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	content := strings.TrimPrefix(string(raw), "\ufeff")
	if strings.TrimSpace(content) == "" {
		return nil, ErrNoHeader
	}

	headerLine := content
	if i := strings.IndexAny(content, "\r\n"); i >= 0 {
		headerLine = content[:i]
	}

	cr := csv.NewReader(strings.NewReader(content))
	cr.Comma = sniffDelimiter(headerLine)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []domain.Record
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec := buildRecord(header, cells)
		if len(rec) == 0 {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
