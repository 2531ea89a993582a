// Package metrics computes dataset-wide KPIs from decoded transaction rows.
// Every function degrades to a documented neutral value when its input column
// is unresolved or a cell is malformed; nothing in this package returns an
// error for messy data.
package metrics

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"payment-metrics-lab/internal/domain"
)

// successStatuses are the status spellings counted as a successful
// transaction, compared case-insensitively.
var successStatuses = map[string]struct{}{
	"success":   {},
	"completed": {},
	"approved":  {},
}

// TotalVolume sums the amount column across all rows. Rows whose cell is
// absent or non-numeric contribute zero. An unresolved amount column ("")
// yields zero.
func TotalVolume(rows []domain.Record, amountColumn string) decimal.Decimal {
	total := decimal.Zero
	if amountColumn == "" {
		return total
	}
	for _, row := range rows {
		if d, ok := row.Decimal(amountColumn); ok {
			total = total.Add(d)
		}
	}
	return total
}

// SuccessCount counts rows whose status cell matches a success spelling.
func SuccessCount(rows []domain.Record, statusColumn string) int {
	if statusColumn == "" {
		return 0
	}
	n := 0
	for _, row := range rows {
		if _, ok := successStatuses[strings.ToLower(row.String(statusColumn))]; ok {
			n++
		}
	}
	return n
}

// FlagCount counts rows whose cell in column is truthy (fraud, chargeback,
// refund markers under their several encodings).
func FlagCount(rows []domain.Record, column string) int {
	if column == "" {
		return 0
	}
	n := 0
	for _, row := range rows {
		if row.Truthy(column) {
			n++
		}
	}
	return n
}

// Rate converts a count to a percentage of total. Total zero yields zero.
func Rate(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// ComputeNPS derives a net promoter score from per-row survey values on the
// 1..10 scale. Values outside [1,10] are discarded, not clamped. Promoters
// score >= 6 and detractors <= 5, a midpoint split of the 1-10 survey scale,
// deliberately not the classic NPS convention (>= 9 / <= 6 on 0-10). Changing
// the split shifts every published score and needs product sign-off.
// A fractional score in (5,6) is neither: it still counts in the divisor.
// Returns 0 when no valid values exist. Range: [-100, 100].
func ComputeNPS(rows []domain.Record, npsColumn string) int {
	if npsColumn == "" {
		return 0
	}
	valid, promoters, detractors := 0, 0, 0
	for _, row := range rows {
		v, ok := row.Float(npsColumn)
		if !ok || v < 1 || v > 10 {
			continue
		}
		valid++
		if v >= 6 {
			promoters++
		} else if v <= 5 {
			detractors++
		}
	}
	if valid == 0 {
		return 0
	}
	return int(math.Round(float64(promoters-detractors) / float64(valid) * 100))
}

// ComputeSentiment averages per-row sentiment values on the [-1,1] scale
// (values outside are discarded) and maps the mean onto a 0..5 display scale
// rounded to one decimal place. Returns 0 when no valid values exist.
func ComputeSentiment(rows []domain.Record, sentimentColumn string) float64 {
	if sentimentColumn == "" {
		return 0
	}
	sum := 0.0
	valid := 0
	for _, row := range rows {
		v, ok := row.Float(sentimentColumn)
		if !ok || v < -1 || v > 1 {
			continue
		}
		sum += v
		valid++
	}
	if valid == 0 {
		return 0
	}
	avg := sum / float64(valid)
	return math.Round((avg+1)/2*5*10) / 10
}

// MerchantActivity counts distinct non-empty merchant ids and the share of
// them with more than one row, used as a repeat-activity retention proxy.
// An unresolved merchant column yields (0, 0).
func MerchantActivity(rows []domain.Record, merchantColumn string) (active int, retentionPct float64) {
	if merchantColumn == "" {
		return 0, 0
	}
	counts := make(map[string]int)
	for _, row := range rows {
		id := row.String(merchantColumn)
		if id == "" {
			continue
		}
		counts[id]++
	}
	if len(counts) == 0 {
		return 0, 0
	}
	retained := 0
	for _, n := range counts {
		if n > 1 {
			retained++
		}
	}
	return len(counts), float64(retained) / float64(len(counts)) * 100
}

// MeanDisputeDays averages the dispute-days column over all rows. Rows with
// no parseable value contribute zero to the sum while still counting in the
// divisor, so sparse dispute data pulls the mean down rather than inflating it.
func MeanDisputeDays(rows []domain.Record, disputeColumn string) float64 {
	if disputeColumn == "" || len(rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, row := range rows {
		if v, ok := row.Float(disputeColumn); ok {
			sum += v
		}
	}
	return sum / float64(len(rows))
}
