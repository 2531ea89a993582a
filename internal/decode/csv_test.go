package decode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCSV_DynamicTyping(t *testing.T) {
	input := "amount,status,is_fraud,merchant_id\n" +
		"100.5,Success,true,M001\n" +
		"200,failed,false,M002\n"

	rows, err := DecodeReader(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 100.5, rows[0]["amount"])
	assert.Equal(t, "Success", rows[0]["status"])
	assert.Equal(t, true, rows[0]["is_fraud"])
	assert.Equal(t, "M001", rows[0]["merchant_id"])
	assert.Equal(t, 200.0, rows[1]["amount"])
	assert.Equal(t, false, rows[1]["is_fraud"])
}

func TestDecodeCSV_EmptyCellsAreAbsent(t *testing.T) {
	input := "amount,status\n" +
		"100,\n" +
		",pending\n"

	rows, err := DecodeReader(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, hasStatus := rows[0]["status"]
	assert.False(t, hasStatus, "empty cell must stay distinguishable from zero")
	_, hasAmount := rows[1]["amount"]
	assert.False(t, hasAmount)
	assert.Equal(t, "pending", rows[1]["status"])
}

func TestDecodeCSV_SkipsFullyEmptyLines(t *testing.T) {
	input := "a,b\n1,2\n,\n\n3,4\n"

	rows, err := DecodeReader(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestDecodeCSV_SniffsSemicolonAndTab(t *testing.T) {
	semicolon := "amount;status\n10;ok\n"
	rows, err := DecodeReader(strings.NewReader(semicolon), FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 10.0, rows[0]["amount"])

	tabbed := "amount\tstatus\n20\tok\n"
	rows, err = DecodeReader(strings.NewReader(tabbed), FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 20.0, rows[0]["amount"])
}

func TestDecodeCSV_SniffIgnoresQuotedDelimiters(t *testing.T) {
	// The quoted header cell carries semicolons, but the real delimiter is
	// the comma outside the quotes.
	input := "\"notes;tags;flags\",amount\nhello,100\n"

	rows, err := DecodeReader(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "hello", rows[0]["notes;tags;flags"])
	assert.Equal(t, 100.0, rows[0]["amount"])
}

func TestDecodeCSV_RaggedRowsTolerated(t *testing.T) {
	input := "a,b,c\n1,2\n4,5,6,7\n"

	rows, err := DecodeReader(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, hasC := rows[0]["c"]
	assert.False(t, hasC)
	assert.Equal(t, 6.0, rows[1]["c"])
}

func TestDecodeCSV_StripsBOMAndTrimsHeader(t *testing.T) {
	input := "\ufeffamount , status\n5,ok\n"

	rows, err := DecodeReader(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5.0, rows[0]["amount"])
	assert.Equal(t, "ok", rows[0]["status"])
}

func TestDecodeCSV_BlankInputIsError(t *testing.T) {
	_, err := DecodeReader(strings.NewReader("   \n"), FormatCSV)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestFormatForFilename(t *testing.T) {
	for name, want := range map[string]Format{
		"data.csv":      FormatCSV,
		"data.TSV":      FormatCSV,
		"export.txt":    FormatCSV,
		"workbook.xlsx": FormatXLSX,
		"workbook.XLSM": FormatXLSX,
		"template.xltx": FormatXLSX,
	} {
		got, err := FormatForFilename(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := FormatForFilename("archive.zip")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
