package engine

import "github.com/shopspring/decimal"

// Config holds the report constants that are not derived from the uploaded
// data. The defaults reproduce the numbers the dashboard has always shown;
// they are configuration, not measurements, and several (uptime, compliance,
// churn) are placeholders with no data source at all.
type Config struct {
	// FeeRate is the revenue proxy: estimated fee revenue per unit of volume.
	FeeRate decimal.Decimal
	// Revenue split weights, applied to total volume.
	GatewayShare    decimal.Decimal
	CreditBNPLShare decimal.Decimal
	VASShare        decimal.Decimal
	// OnboardMultiplier estimates onboarded merchants from active ones.
	OnboardMultiplier float64

	ChurnRatePct    float64
	SettlementHours float64
	SystemUptimePct float64
	CompliancePct   float64
}

// DefaultConfig returns the standard report constants.
func DefaultConfig() Config {
	return Config{
		FeeRate:           decimal.NewFromFloat(0.02),
		GatewayShare:      decimal.NewFromFloat(0.015),
		CreditBNPLShare:   decimal.NewFromFloat(0.008),
		VASShare:          decimal.NewFromFloat(0.005),
		OnboardMultiplier: 1.2,
		ChurnRatePct:      5.2,
		SettlementHours:   24,
		SystemUptimePct:   99.95,
		CompliancePct:     98.5,
	}
}

// TraceEvent is one diagnostic emission from the engine. Tracing never
// affects the report; it replaces the console narration the dashboard
// used to rely on for debugging uploads.
type TraceEvent struct {
	Stage   string
	Message string
	Fields  map[string]any
}

// Tracer receives diagnostic events during report computation. A nil Tracer
// disables tracing.
type Tracer func(TraceEvent)

// Option configures an Engine.
type Option func(*Engine)

// WithConfig replaces the default report constants.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithTracer installs a diagnostic trace callback.
func WithTracer(t Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}
