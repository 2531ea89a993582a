// Package normalization turns sparse row timestamps into a dense, fixed-shape
// monthly time series.
package normalization

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"payment-metrics-lab/internal/domain"
)

// timeLayouts are tried in order when parsing a timestamp cell. The first
// layout that parses wins.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
}

type monthAccumulator struct {
	volume  decimal.Decimal
	count   int
	revenue decimal.Decimal
}

// BuildMonthly buckets rows by calendar month and returns exactly twelve
// buckets in Jan..Dec order; months with no contributing rows are all-zero.
// The second return value is the number of distinct months that received at
// least one row, for degenerate-series diagnostics.
//
// Unlike every other field, the timestamp column is chosen per row: the first
// alias of timestampAliases with a non-empty cell on that row is taken. If
// that cell does not parse the row is excluded from the series, even when a
// lower-priority alias on the same row would have parsed; lower aliases are
// fallbacks for absence, not for bad values. Rows with no timestamp at all
// are likewise excluded, never bucketed elsewhere. amountColumn
// may be "" (amount field unresolved); such series carry counts only.
// Revenue per bucket is volume * feeRate, an estimate for datasets that carry
// no revenue column.
func BuildMonthly(rows []domain.Record, timestampAliases []string, amountColumn string, feeRate decimal.Decimal) ([]domain.MonthBucket, int) {
	accs := make(map[string]*monthAccumulator, 12)

	for _, row := range rows {
		ts, ok := rowTime(row, timestampAliases)
		if !ok {
			continue
		}
		month := ts.Format("Jan")

		amount := decimal.Zero
		if amountColumn != "" {
			if d, ok := row.Decimal(amountColumn); ok {
				amount = d
			}
		}

		acc, ok := accs[month]
		if !ok {
			acc = &monthAccumulator{}
			accs[month] = acc
		}
		acc.volume = acc.volume.Add(amount)
		acc.count++
		acc.revenue = acc.revenue.Add(amount.Mul(feeRate))
	}

	buckets := make([]domain.MonthBucket, len(domain.Months))
	for i, month := range domain.Months {
		buckets[i] = domain.MonthBucket{Month: month}
		if acc, ok := accs[month]; ok {
			buckets[i].TPV = acc.volume.InexactFloat64()
			buckets[i].Transactions = acc.count
			buckets[i].Revenue = acc.revenue.InexactFloat64()
		}
	}

	return buckets, len(accs)
}

// rowTime parses the first alias present on the row. A present but
// unparseable cell fails the row; it does not fall through to later aliases.
func rowTime(row domain.Record, aliases []string) (time.Time, bool) {
	for _, alias := range aliases {
		s := row.String(alias)
		if s == "" {
			continue
		}
		return parseTime(s)
	}
	return time.Time{}, false
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
