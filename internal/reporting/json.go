package reporting

import (
	"encoding/json"
	"fmt"

	"payment-metrics-lab/internal/domain"
)

// RenderJSON marshals the report in the dashboard wire shape, indented.
// Object keys are emitted sorted, so identical reports serialize to identical
// bytes.
func RenderJSON(r *domain.MetricsReport) ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return out, nil
}
