package metrics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"payment-metrics-lab/internal/domain"
)

// OtherBucket is the fallback label for rows with no payment method or
// category value, and for whole datasets where the field never resolved.
const OtherBucket = "Other"

// PaymentMethodShare groups row counts by payment method and converts each
// group to a percentage of total, pre-formatted to one decimal place. The
// string formatting is an output contract: the dashboard renders values
// verbatim. An unresolved method column puts every row in OtherBucket.
func PaymentMethodShare(rows []domain.Record, methodColumn string, total int) map[string]string {
	counts := make(map[string]int)
	for _, row := range rows {
		method := OtherBucket
		if methodColumn != "" {
			if v := row.String(methodColumn); v != "" {
				method = v
			}
		}
		counts[method]++
	}

	shares := make(map[string]string, len(counts))
	for method, n := range counts {
		shares[method] = fmt.Sprintf("%.1f", Rate(n, total))
	}
	return shares
}

// TopSegments sums the amount column per category and returns the n largest
// segments by volume, descending. Ties keep first-appearance order (stable
// sort over insertion order), so repeated runs over the same input produce
// identical rankings.
func TopSegments(rows []domain.Record, categoryColumn, amountColumn string, n int) []domain.SegmentVolume {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, row := range rows {
		segment := OtherBucket
		if categoryColumn != "" {
			if v := row.String(categoryColumn); v != "" {
				segment = v
			}
		}

		amount := decimal.Zero
		if amountColumn != "" {
			if d, ok := row.Decimal(amountColumn); ok {
				amount = d
			}
		}

		if _, seen := totals[segment]; !seen {
			order = append(order, segment)
		}
		totals[segment] = totals[segment].Add(amount)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]].GreaterThan(totals[order[j]])
	})

	if n > len(order) {
		n = len(order)
	}
	segments := make([]domain.SegmentVolume, 0, n)
	for _, name := range order[:n] {
		segments = append(segments, domain.SegmentVolume{
			Name: name,
			TPV:  totals[name].InexactFloat64(),
		})
	}
	return segments
}
