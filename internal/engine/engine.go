// Package engine assembles the four report sections from decoded rows.
// ComputeReport is a pure function of its input: no I/O, no retained state,
// and identical output for identical row lists.
package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"payment-metrics-lab/internal/domain"
	"payment-metrics-lab/internal/metrics"
	"payment-metrics-lab/internal/normalization"
	"payment-metrics-lab/internal/resolve"
)

// Engine computes metrics reports. The zero value is not usable; call New.
type Engine struct {
	cfg    Config
	tracer Tracer
}

// New creates an engine with the default config unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeReport is a convenience wrapper over New().ComputeReport for callers
// that need no configuration.
func ComputeReport(rows []domain.Record) *domain.MetricsReport {
	return New().ComputeReport(rows)
}

// ComputeReport derives the full metrics report from decoded rows. Returns
// nil for an empty or absent row list: the legitimate "nothing to show"
// state, not an error. Missing fields and malformed cells degrade to neutral
// defaults per aggregator; partial data always yields a complete report shape.
func (e *Engine) ComputeReport(rows []domain.Record) *domain.MetricsReport {
	if len(rows) == 0 {
		return nil
	}

	fields := resolve.ResolveAll(rows)
	e.traceResolution(fields)

	amountCol := fields[resolve.FieldAmount].Column
	total := len(rows)

	totalVolume := metrics.TotalVolume(rows, amountCol)
	successful := metrics.SuccessCount(rows, fields[resolve.FieldStatus].Column)
	fraudRate := metrics.Rate(metrics.FlagCount(rows, fields[resolve.FieldIsFraud].Column), total)
	chargebackRate := metrics.Rate(metrics.FlagCount(rows, fields[resolve.FieldIsChargeback].Column), total)
	refundRate := metrics.Rate(metrics.FlagCount(rows, fields[resolve.FieldIsRefund].Column), total)
	active, retention := metrics.MerchantActivity(rows, fields[resolve.FieldMerchantID].Column)

	monthly, distinctMonths := normalization.BuildMonthly(rows, resolve.TimestampAliases(), amountCol, e.cfg.FeeRate)
	if distinctMonths < 2 {
		e.trace("monthly", "time series is degenerate: fewer than 2 distinct months in dataset", map[string]any{
			"distinct_months": distinctMonths,
		})
	}

	avgTransaction := 0.0
	if total > 0 && amountCol != "" {
		avgTransaction = totalVolume.Div(decimal.NewFromInt(int64(total))).InexactFloat64()
	}

	report := &domain.MetricsReport{
		ProductPerformance: domain.ProductPerformance{
			TPV: domain.TPVBreakdown{
				Monthly:   totalVolume.Div(decimal.NewFromInt(12)).InexactFloat64(),
				Quarterly: totalVolume.Div(decimal.NewFromInt(4)).InexactFloat64(),
				Yearly:    totalVolume.InexactFloat64(),
			},
			Revenue: domain.RevenueSplit{
				PaymentGateway:     totalVolume.Mul(e.cfg.GatewayShare).InexactFloat64(),
				CreditBNPL:         totalVolume.Mul(e.cfg.CreditBNPLShare).InexactFloat64(),
				ValueAddedServices: totalVolume.Mul(e.cfg.VASShare).InexactFloat64(),
			},
			Transactions: domain.TransactionTotals{
				Total:       total,
				Successful:  successful,
				SuccessRate: metrics.Rate(successful, total),
			},
			AverageTransactionValue: avgTransaction,
			PaymentMethods:          metrics.PaymentMethodShare(rows, fields[resolve.FieldPaymentMethod].Column, total),
			RefundRate:              refundRate,
			ChargebackRate:          chargebackRate,
			SettlementHours:         e.cfg.SettlementHours,
		},
		CustomerSentiments: domain.CustomerSentiments{
			Merchants: domain.MerchantBase{
				Active:    active,
				Onboarded: int(math.Round(float64(active) * e.cfg.OnboardMultiplier)),
				ChurnRate: e.cfg.ChurnRatePct,
			},
			TopSegments:       metrics.TopSegments(rows, fields[resolve.FieldCategory].Column, amountCol, 5),
			CustomerRetention: retention,
			NPS:               metrics.ComputeNPS(rows, fields[resolve.FieldNPSScore].Column),
			SentimentScore:    metrics.ComputeSentiment(rows, fields[resolve.FieldSentiment].Column),
		},
		MarketTrends: domain.MarketTrends{
			FraudRate:             fraudRate,
			DisputeResolutionDays: metrics.MeanDisputeDays(rows, fields[resolve.FieldDisputeDays].Column),
			SystemUptime:          e.cfg.SystemUptimePct,
			ComplianceScore:       e.cfg.CompliancePct,
		},
		MonthlyData: monthly,
	}

	e.trace("assembly", "report assembled", map[string]any{
		"rows":         total,
		"total_volume": report.ProductPerformance.TPV.Yearly,
		"success_rate": report.ProductPerformance.Transactions.SuccessRate,
	})

	return report
}

func (e *Engine) trace(stage, msg string, fields map[string]any) {
	if e.tracer == nil {
		return
	}
	e.tracer(TraceEvent{Stage: stage, Message: msg, Fields: fields})
}

func (e *Engine) traceResolution(fields map[resolve.Field]resolve.Resolution) {
	if e.tracer == nil {
		return
	}
	for _, spec := range resolve.Table {
		res := fields[spec.Field]
		if res.Resolved() {
			e.trace("resolve", "field resolved", map[string]any{
				"field":   string(res.Field),
				"column":  res.Column,
				"present": res.Present,
			})
		} else {
			e.trace("resolve", "field unresolved, metrics will use defaults", map[string]any{
				"field": string(spec.Field),
			})
		}
	}
}
