package domain

// MetricsReport is the fixed-shape summary consumed by the dashboard.
// JSON field names match the dashboard wire format and must not change
// independently of it. A nil *MetricsReport means "no report available"
// (empty dataset), not an error.
type MetricsReport struct {
	ProductPerformance ProductPerformance `json:"productPerformance"`
	CustomerSentiments CustomerSentiments `json:"customerSentiments"`
	MarketTrends       MarketTrends       `json:"marketTrends"`
	MonthlyData        []MonthBucket      `json:"monthlyData"`
}

// ProductPerformance aggregates volume, revenue, and transaction health.
type ProductPerformance struct {
	TPV                     TPVBreakdown      `json:"tpv"`
	Revenue                 RevenueSplit      `json:"revenue"`
	Transactions            TransactionTotals `json:"transactions"`
	AverageTransactionValue float64           `json:"averageTransactionValue"`
	// PaymentMethods values are percentages pre-formatted to one decimal
	// place (e.g. "45.0"); the dashboard renders them verbatim.
	PaymentMethods  map[string]string `json:"paymentMethods"`
	RefundRate      float64           `json:"refundRate"`
	ChargebackRate  float64           `json:"chargebackRate"`
	SettlementHours float64           `json:"settlementTime"`
}

// TPVBreakdown reports total payment volume at three scales. Monthly and
// quarterly are plain divisions of the dataset total, not independently
// measured periods.
type TPVBreakdown struct {
	Monthly   float64 `json:"monthly"`
	Quarterly float64 `json:"quarterly"`
	Yearly    float64 `json:"yearly"`
}

// RevenueSplit is a proportional allocation of TPV across product lines
// using configured weights; it is an estimate, not measured revenue.
type RevenueSplit struct {
	PaymentGateway     float64 `json:"paymentGateway"`
	CreditBNPL         float64 `json:"creditBNPL"`
	ValueAddedServices float64 `json:"valueAddedServices"`
}

// TransactionTotals counts rows and successful rows.
type TransactionTotals struct {
	Total       int     `json:"total"`
	Successful  int     `json:"successful"`
	SuccessRate float64 `json:"successRate"`
}

// CustomerSentiments aggregates merchant base health and survey-derived scores.
type CustomerSentiments struct {
	Merchants         MerchantBase    `json:"merchants"`
	TopSegments       []SegmentVolume `json:"topSegments"`
	CustomerRetention float64         `json:"customerRetention"`
	NPS               int             `json:"nps"`
	SentimentScore    float64         `json:"sentimentScore"`
}

// MerchantBase counts merchants. Onboarded is estimated from the active count
// via a configured multiplier; churn rate is a configured placeholder.
type MerchantBase struct {
	Active    int     `json:"active"`
	Onboarded int     `json:"onboarded"`
	ChurnRate float64 `json:"churnRate"`
}

// SegmentVolume is one merchant-category segment with its summed volume.
type SegmentVolume struct {
	Name string  `json:"name"`
	TPV  float64 `json:"tpv"`
}

// MarketTrends mixes one measured rate with configured placeholders that have
// no source in the uploaded data.
type MarketTrends struct {
	FraudRate             float64 `json:"fraudRate"`
	DisputeResolutionDays float64 `json:"disputeResolutionTime"`
	SystemUptime          float64 `json:"systemUptime"`
	ComplianceScore       float64 `json:"complianceScore"`
}

// MonthBucket is one calendar month of the twelve-bucket time series.
// Revenue is the fee-rate proxy, not measured revenue.
type MonthBucket struct {
	Month        string  `json:"month"`
	TPV          float64 `json:"tpv"`
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}

// Months lists the three-letter month labels in the fixed calendar order the
// monthly series is emitted in.
var Months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
