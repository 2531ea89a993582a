// Package resolve maps logical transaction fields onto whatever column names
// an uploaded dataset happens to use. Resolution is dataset-global: one column
// is chosen per logical field up front and used for every row.
package resolve

// Kind describes how a cell must look for an alias to count as present.
type Kind int

const (
	// KindText accepts any non-empty cell.
	KindText Kind = iota
	// KindNumeric requires the cell to parse as a number.
	KindNumeric
	// KindFlag accepts any non-empty cell; truthiness is judged later,
	// during aggregation.
	KindFlag
	// KindTime accepts any non-empty cell. Timestamp columns are special:
	// aggregation retries the alias list per row instead of honoring the
	// global choice (see normalization.BuildMonthly).
	KindTime
)

// Field is a logical field the metrics engine understands.
type Field string

const (
	FieldAmount        Field = "amount"
	FieldStatus        Field = "status"
	FieldPaymentMethod Field = "paymentMethod"
	FieldMerchantID    Field = "merchantId"
	FieldCategory      Field = "category"
	FieldSentiment     Field = "sentiment"
	FieldNPSScore      Field = "npsScore"
	FieldIsFraud       Field = "isFraud"
	FieldIsChargeback  Field = "isChargeback"
	FieldIsRefund      Field = "isRefund"
	FieldDisputeDays   Field = "disputeDays"
	FieldTimestamp     Field = "timestamp"
)

// Spec is one entry of the alias table: the aliases are tried in listed order
// and the first one with at least one qualifying cell anywhere in the dataset
// wins for every row.
type Spec struct {
	Field   Field
	Kind    Kind
	Aliases []string
}

// Table is the alias table for transaction exports. Order within each alias
// list is a contract: amount_inr outranks amount, merchant_category outranks
// category.
var Table = []Spec{
	{Field: FieldAmount, Kind: KindNumeric, Aliases: []string{"amount_inr", "amount"}},
	{Field: FieldStatus, Kind: KindText, Aliases: []string{"status", "transaction_status"}},
	{Field: FieldPaymentMethod, Kind: KindText, Aliases: []string{"payment_method"}},
	{Field: FieldMerchantID, Kind: KindText, Aliases: []string{"merchant_id"}},
	{Field: FieldCategory, Kind: KindText, Aliases: []string{"merchant_category", "category"}},
	{Field: FieldSentiment, Kind: KindNumeric, Aliases: []string{"sentiment_score"}},
	{Field: FieldNPSScore, Kind: KindNumeric, Aliases: []string{"nps_score"}},
	{Field: FieldIsFraud, Kind: KindFlag, Aliases: []string{"is_fraud", "fraud_flag", "fraud"}},
	{Field: FieldIsChargeback, Kind: KindFlag, Aliases: []string{"is_chargeback", "chargeback"}},
	{Field: FieldIsRefund, Kind: KindFlag, Aliases: []string{"refund_flag", "refund", "is_refund"}},
	{Field: FieldDisputeDays, Kind: KindNumeric, Aliases: []string{"dispute_days"}},
	{Field: FieldTimestamp, Kind: KindTime, Aliases: []string{"timestamp", "transaction_date", "date"}},
}

// TimestampAliases returns the timestamp alias list in priority order.
func TimestampAliases() []string {
	for _, s := range Table {
		if s.Field == FieldTimestamp {
			return s.Aliases
		}
	}
	return nil
}
