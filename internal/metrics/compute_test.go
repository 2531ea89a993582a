package metrics

import (
	"testing"

	"payment-metrics-lab/internal/domain"
)

func TestTotalVolume_SkipsMalformedCells(t *testing.T) {
	rows := []domain.Record{
		{"amount": 100.0},
		{"amount": "250.50"},
		{"amount": "not a number"},
		{},
	}

	total := TotalVolume(rows, "amount")

	if got := total.InexactFloat64(); got != 350.5 {
		t.Errorf("expected 350.5, got %v", got)
	}
}

func TestTotalVolume_UnresolvedColumn(t *testing.T) {
	rows := []domain.Record{{"amount": 100.0}}
	if !TotalVolume(rows, "").IsZero() {
		t.Error("expected zero for unresolved amount column")
	}
}

func TestSuccessCount_CaseInsensitiveSet(t *testing.T) {
	rows := []domain.Record{
		{"status": "Success"},
		{"status": "COMPLETED"},
		{"status": "approved"},
		{"status": "failed"},
		{"status": "pending"},
		{},
	}

	if got := SuccessCount(rows, "status"); got != 3 {
		t.Errorf("expected 3 successes, got %d", got)
	}
}

func TestFlagCount_Encodings(t *testing.T) {
	rows := []domain.Record{
		{"is_fraud": true},
		{"is_fraud": "TRUE"},
		{"is_fraud": "yes"},
		{"is_fraud": "Y"},
		{"is_fraud": 1.0},
		{"is_fraud": false},
		{"is_fraud": "no"},
		{"is_fraud": 0.0},
		{},
	}

	if got := FlagCount(rows, "is_fraud"); got != 5 {
		t.Errorf("expected 5 truthy flags, got %d", got)
	}
}

func TestRate_Bounds(t *testing.T) {
	if got := Rate(0, 0); got != 0 {
		t.Errorf("expected 0 for zero total, got %v", got)
	}
	if got := Rate(3, 4); got != 75 {
		t.Errorf("expected 75, got %v", got)
	}
	if got := Rate(4, 4); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
}

func TestComputeNPS_MidpointSplit(t *testing.T) {
	// 10 is a promoter (>=6), 3 a detractor (<=5): balanced → 0.
	rows := []domain.Record{
		{"nps_score": 10.0},
		{"nps_score": 3.0},
	}

	if got := ComputeNPS(rows, "nps_score"); got != 0 {
		t.Errorf("expected nps 0, got %d", got)
	}
}

func TestComputeNPS_SixIsPromoter(t *testing.T) {
	// The split is >=6 promoter / <=5 detractor on the 1-10 scale, not the
	// classic 0-10 convention.
	rows := []domain.Record{
		{"nps_score": 6.0},
		{"nps_score": 6.0},
		{"nps_score": 5.0},
	}

	// (2 - 1) / 3 * 100 = 33.33 → 33
	if got := ComputeNPS(rows, "nps_score"); got != 33 {
		t.Errorf("expected nps 33, got %d", got)
	}
}

func TestComputeNPS_FractionalPassiveIsNeither(t *testing.T) {
	// 5.5 sits between the detractor and promoter thresholds: it counts in
	// the divisor but in neither bucket.
	rows := []domain.Record{
		{"nps_score": 5.5},
	}

	if got := ComputeNPS(rows, "nps_score"); got != 0 {
		t.Errorf("expected nps 0 for a lone passive score, got %d", got)
	}

	// With a promoter alongside: (1 - 0) / 2 * 100 = 50.
	rows = append(rows, domain.Record{"nps_score": 10.0})
	if got := ComputeNPS(rows, "nps_score"); got != 50 {
		t.Errorf("expected nps 50, got %d", got)
	}
}

func TestComputeNPS_DiscardsOutOfDomain(t *testing.T) {
	rows := []domain.Record{
		{"nps_score": 0.0},  // below domain, discarded not clamped
		{"nps_score": 11.0}, // above domain
		{"nps_score": "high"},
	}

	if got := ComputeNPS(rows, "nps_score"); got != 0 {
		t.Errorf("expected nps 0 with no valid values, got %d", got)
	}
}

func TestComputeSentiment_MapsToDisplayScale(t *testing.T) {
	// avg = 0 → (0+1)/2*5 = 2.5
	rows := []domain.Record{
		{"sentiment_score": -0.5},
		{"sentiment_score": 0.5},
	}

	if got := ComputeSentiment(rows, "sentiment_score"); got != 2.5 {
		t.Errorf("expected 2.5, got %v", got)
	}
}

func TestComputeSentiment_OneDecimal(t *testing.T) {
	// avg = 1/3 → ((1/3+1)/2*5) = 3.333... → 3.3
	rows := []domain.Record{
		{"sentiment_score": 1.0},
		{"sentiment_score": 0.0},
		{"sentiment_score": 0.0},
	}

	if got := ComputeSentiment(rows, "sentiment_score"); got != 3.3 {
		t.Errorf("expected 3.3, got %v", got)
	}
}

func TestComputeSentiment_NoValidValues(t *testing.T) {
	rows := []domain.Record{
		{"sentiment_score": 2.0},
		{"sentiment_score": -3.0},
	}

	if got := ComputeSentiment(rows, "sentiment_score"); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestMerchantActivity_RetentionProxy(t *testing.T) {
	rows := []domain.Record{
		{"merchant_id": "A"},
		{"merchant_id": "A"},
		{"merchant_id": "B"},
		{"merchant_id": ""},
		{},
	}

	active, retention := MerchantActivity(rows, "merchant_id")

	if active != 2 {
		t.Errorf("expected 2 active merchants, got %d", active)
	}
	// One of two merchants repeats → 50%.
	if retention != 50 {
		t.Errorf("expected 50%% retention, got %v", retention)
	}
}

func TestMerchantActivity_Unresolved(t *testing.T) {
	active, retention := MerchantActivity([]domain.Record{{"x": "y"}}, "")
	if active != 0 || retention != 0 {
		t.Errorf("expected (0, 0), got (%d, %v)", active, retention)
	}
}

func TestMeanDisputeDays_FullRowCountDivisor(t *testing.T) {
	// Missing values contribute 0 but the divisor stays the row count.
	rows := []domain.Record{
		{"dispute_days": 4.0},
		{"dispute_days": 2.0},
		{},
	}

	if got := MeanDisputeDays(rows, "dispute_days"); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}
