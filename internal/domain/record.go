package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one decoded row: column name -> scalar cell value.
// Cell values are string, float64, or bool depending on what the decoder
// inferred; absent columns are simply missing keys. Records are read-only
// once handed to the engine.
type Record map[string]any

// Lookup returns the raw cell value for a column and whether the column exists.
func (r Record) Lookup(column string) (any, bool) {
	v, ok := r[column]
	return v, ok
}

// Has reports whether the column holds a non-empty value. Empty means absent,
// nil, or a blank string; zero is non-empty.
func (r Record) Has(column string) bool {
	v, ok := r[column]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// String returns the cell rendered as a trimmed string, or "" when the column
// is absent or empty. Numeric cells are formatted with minimal digits.
func (r Record) String(column string) string {
	v, ok := r[column]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Decimal parses the cell as a decimal number. The second return value is
// false when the column is absent, empty, or not numeric.
func (r Record) Decimal(column string) (decimal.Decimal, bool) {
	v, ok := r[column]
	if !ok || v == nil {
		return decimal.Zero, false
	}
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// Float parses the cell as a float64. The second return value is false when
// the column is absent, empty, or not numeric.
func (r Record) Float(column string) (float64, bool) {
	v, ok := r[column]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Truthy reports whether the cell encodes an affirmative flag. Accepted
// encodings: bool true, the number 1, and the strings "true", "yes", "y",
// "1" case-insensitively.
func (r Record) Truthy(column string) bool {
	v, ok := r[column]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y", "1":
			return true
		}
	}
	return false
}
