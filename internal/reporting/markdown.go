package reporting

import (
	"fmt"
	"sort"
	"strings"

	"payment-metrics-lab/internal/domain"
)

// RenderMarkdown renders the report as a Markdown summary. Map-backed
// sections are emitted in sorted key order for deterministic output.
func RenderMarkdown(r *domain.MetricsReport) string {
	var sb strings.Builder

	sb.WriteString("# Payment Metrics Report\n\n")

	// Product Performance
	pp := r.ProductPerformance
	sb.WriteString("## Product Performance\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| TPV (yearly) | %s |\n", FormatCurrency(pp.TPV.Yearly)))
	sb.WriteString(fmt.Sprintf("| TPV (quarterly) | %s |\n", FormatCurrency(pp.TPV.Quarterly)))
	sb.WriteString(fmt.Sprintf("| TPV (monthly) | %s |\n", FormatCurrency(pp.TPV.Monthly)))
	sb.WriteString(fmt.Sprintf("| Revenue: payment gateway | %s |\n", FormatCurrency(pp.Revenue.PaymentGateway)))
	sb.WriteString(fmt.Sprintf("| Revenue: credit/BNPL | %s |\n", FormatCurrency(pp.Revenue.CreditBNPL)))
	sb.WriteString(fmt.Sprintf("| Revenue: value-added services | %s |\n", FormatCurrency(pp.Revenue.ValueAddedServices)))
	sb.WriteString(fmt.Sprintf("| Transactions | %s |\n", FormatNumber(float64(pp.Transactions.Total))))
	sb.WriteString(fmt.Sprintf("| Successful | %s |\n", FormatNumber(float64(pp.Transactions.Successful))))
	sb.WriteString(fmt.Sprintf("| Success rate | %s |\n", FormatPercentage(pp.Transactions.SuccessRate)))
	sb.WriteString(fmt.Sprintf("| Average transaction value | %s |\n", FormatCurrency(pp.AverageTransactionValue)))
	sb.WriteString(fmt.Sprintf("| Refund rate | %s |\n", FormatPercentage(pp.RefundRate)))
	sb.WriteString(fmt.Sprintf("| Chargeback rate | %s |\n", FormatPercentage(pp.ChargebackRate)))
	sb.WriteString(fmt.Sprintf("| Settlement time (hours) | %s |\n", FormatNumber(pp.SettlementHours)))
	sb.WriteString("\n")

	// Payment methods, sorted by method name
	if len(pp.PaymentMethods) > 0 {
		sb.WriteString("### Payment Methods\n\n")
		sb.WriteString("| Method | Share |\n")
		sb.WriteString("|--------|-------|\n")
		methods := make([]string, 0, len(pp.PaymentMethods))
		for m := range pp.PaymentMethods {
			methods = append(methods, m)
		}
		sort.Strings(methods)
		for _, m := range methods {
			sb.WriteString(fmt.Sprintf("| %s | %s%% |\n", m, pp.PaymentMethods[m]))
		}
		sb.WriteString("\n")
	}

	// Customer Sentiments
	cs := r.CustomerSentiments
	sb.WriteString("## Customer Sentiments\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Active merchants | %s |\n", FormatNumber(float64(cs.Merchants.Active))))
	sb.WriteString(fmt.Sprintf("| Onboarded merchants (est.) | %s |\n", FormatNumber(float64(cs.Merchants.Onboarded))))
	sb.WriteString(fmt.Sprintf("| Churn rate | %s |\n", FormatPercentage(cs.Merchants.ChurnRate)))
	sb.WriteString(fmt.Sprintf("| Customer retention | %s |\n", FormatPercentage(cs.CustomerRetention)))
	sb.WriteString(fmt.Sprintf("| NPS | %d |\n", cs.NPS))
	sb.WriteString(fmt.Sprintf("| Sentiment score | %.1f / 5 |\n", cs.SentimentScore))
	sb.WriteString("\n")

	if len(cs.TopSegments) > 0 {
		sb.WriteString("### Top Segments\n\n")
		sb.WriteString("| Segment | TPV |\n")
		sb.WriteString("|---------|-----|\n")
		for _, seg := range cs.TopSegments {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", seg.Name, FormatCurrency(seg.TPV)))
		}
		sb.WriteString("\n")
	}

	// Market Trends
	mt := r.MarketTrends
	sb.WriteString("## Market Trends\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Fraud rate | %s |\n", FormatPercentage(mt.FraudRate)))
	sb.WriteString(fmt.Sprintf("| Dispute resolution (days) | %.1f |\n", mt.DisputeResolutionDays))
	sb.WriteString(fmt.Sprintf("| System uptime | %s |\n", FormatPercentage(mt.SystemUptime)))
	sb.WriteString(fmt.Sprintf("| Compliance score | %s |\n", FormatPercentage(mt.ComplianceScore)))
	sb.WriteString("\n")

	// Monthly series
	sb.WriteString("## Monthly Data\n\n")
	sb.WriteString("| Month | TPV | Transactions | Revenue |\n")
	sb.WriteString("|-------|-----|--------------|---------|\n")
	for _, b := range r.MonthlyData {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			b.Month,
			FormatCurrency(b.TPV),
			FormatNumber(float64(b.Transactions)),
			FormatCurrency(b.Revenue),
		))
	}

	return sb.String()
}
