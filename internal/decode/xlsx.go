package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"payment-metrics-lab/internal/domain"
)

// ErrNoSheets is returned when a workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// decodeXLSX reads the first sheet of a workbook. The first row is the
// header; later sheets are ignored. Cell values arrive from excelize as the
// displayed strings, so dynamic typing runs on them the same way it does for
// delimited text.
func decodeXLSX(r io.Reader) ([]domain.Record, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	cells, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	var rows []domain.Record
	for _, line := range cells[1:] {
		rec := buildRecord(header, line)
		if len(rec) == 0 {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
