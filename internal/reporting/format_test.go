package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency_Thresholds(t *testing.T) {
	assert.Equal(t, "₹1.5B", FormatCurrency(1_500_000_000))
	assert.Equal(t, "₹45.0M", FormatCurrency(45_000_000))
	assert.Equal(t, "₹1.0K", FormatCurrency(1000))
	assert.Equal(t, "₹600", FormatCurrency(600))
	assert.Equal(t, "₹0", FormatCurrency(0))
}

func TestFormatCurrency_OneDecimal(t *testing.T) {
	assert.Equal(t, "₹1.2K", FormatCurrency(1234))
	assert.Equal(t, "₹999.9M", FormatCurrency(999_949_999))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "95.0%", FormatPercentage(95))
	assert.Equal(t, "3.1%", FormatPercentage(3.14159))
	assert.Equal(t, "0.0%", FormatPercentage(0))
}

func TestFormatNumber_Grouping(t *testing.T) {
	assert.Equal(t, "2,500,000", FormatNumber(2_500_000))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "600", FormatNumber(600))
	assert.Equal(t, "-12,345", FormatNumber(-12345))
	assert.Equal(t, "1,234.5", FormatNumber(1234.5))
}
