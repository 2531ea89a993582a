// Package reporting renders metrics reports for consumers: JSON for the
// dashboard, Markdown for humans, plus the display formatting helpers the
// dashboard shares.
package reporting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders a rupee amount abbreviated to K/M/B at the
// 1e3/1e6/1e9 thresholds with one decimal place. Values below a thousand get
// comma grouping instead.
func FormatCurrency(value float64) string {
	if math.IsNaN(value) {
		return "₹0"
	}
	switch {
	case value >= 1_000_000_000:
		return fmt.Sprintf("₹%.1fB", value/1_000_000_000)
	case value >= 1_000_000:
		return fmt.Sprintf("₹%.1fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("₹%.1fK", value/1_000)
	}
	return "₹" + FormatNumber(value)
}

// FormatPercentage renders a percentage with one fixed decimal place.
func FormatPercentage(value float64) string {
	if math.IsNaN(value) {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", value)
}

// FormatNumber renders a number with thousands grouping.
func FormatNumber(value float64) string {
	if math.IsNaN(value) {
		return "0"
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}
	sb.WriteString(fracPart)
	return sb.String()
}
