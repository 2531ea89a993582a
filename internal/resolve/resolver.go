package resolve

import (
	"payment-metrics-lab/internal/domain"
)

// Resolution records which column was chosen for a logical field.
// Column is "" when no alias qualified; every dependent metric then degrades
// to its documented default instead of failing.
type Resolution struct {
	Field   Field
	Column  string
	Present int // rows in which the chosen column qualifies
}

// Resolved reports whether any alias qualified.
func (r Resolution) Resolved() bool {
	return r.Column != ""
}

// ResolveField scans aliases in priority order and picks the first one with at
// least one qualifying cell across all rows. The choice is dataset-global:
// a row that is empty under the chosen column contributes a default, it does
// not fall through to a later alias. Rows carrying the value under a lower-
// priority alias are therefore not counted; that is a known limitation of the
// export format, kept intentionally.
func ResolveField(rows []domain.Record, spec Spec) Resolution {
	for _, alias := range spec.Aliases {
		present := 0
		for _, row := range rows {
			if cellQualifies(row, alias, spec.Kind) {
				present++
			}
		}
		if present > 0 {
			return Resolution{Field: spec.Field, Column: alias, Present: present}
		}
	}
	return Resolution{Field: spec.Field}
}

// ResolveAll resolves every field of the alias table in one pass over the
// table, keyed by logical field.
func ResolveAll(rows []domain.Record) map[Field]Resolution {
	out := make(map[Field]Resolution, len(Table))
	for _, spec := range Table {
		out[spec.Field] = ResolveField(rows, spec)
	}
	return out
}

func cellQualifies(row domain.Record, column string, kind Kind) bool {
	if kind == KindNumeric {
		_, ok := row.Float(column)
		return ok
	}
	return row.Has(column)
}
