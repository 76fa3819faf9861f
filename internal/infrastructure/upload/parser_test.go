package upload

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = "Order ID,Status,Total Amount,Refund Amount,Total (- Refund),Location,Order Date,Billing First Name,Billing Last Name\n" +
	"26004,Processing,$20.00,0,20.00,\"2210 Cottman Ave, Philadelphia, PA\",2025-05-02 13:45:00,Ada,Lovelace\n" +
	"26005,Refunded,15.50,15.50,0,,2025-05-03,Grace,Hopper\n" +
	"26005,Refunded,-15.50,15.50,0,,2025-05-03,Grace,Hopper\n" +
	",,,,,,,,\n" +
	"26006,Completed,abc,,,Main Store,2025-05-04,,\n"

func TestParse_CSV(t *testing.T) {
	records, err := Parse("orders.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 4)

	first := records[0]
	require.NoError(t, first.Err)
	assert.Equal(t, "26004", first.Order.ExternalID)
	assert.Equal(t, "processing", first.Order.Status)
	assert.Equal(t, "20.00", first.Order.Total.StringFixed(2))
	assert.Equal(t, "2210 Cottman Ave, Philadelphia, PA", first.Order.LocationName)
	assert.True(t, first.Order.HasLocation)
	assert.Equal(t, time.Date(2025, 5, 2, 13, 45, 0, 0, time.UTC), first.Order.CreatedAt)
	assert.Equal(t, "Ada Lovelace", first.Order.Customer.Name)
	assert.Contains(t, string(first.Order.Raw), `"Order ID":"26004"`)

	second := records[1]
	require.NoError(t, second.Err)
	assert.Equal(t, "refunded", second.Order.Status)
	assert.False(t, second.Order.HasLocation)
	assert.Equal(t, "15.50", second.Order.RefundAmount.StringFixed(2))

	assert.True(t, records[2].RefundDuplicate)
	assert.Nil(t, records[2].Order)

	assert.Error(t, records[3].Err)
	assert.Equal(t, 6, records[3].Line)
}

func TestParse_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Order ID", "Status", "Total Amount", "Location", "Date"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"5001", "Completed", "12.34", "Main Store", "2025-06-01"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	records, err := Parse("orders.XLSX", &buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NoError(t, records[0].Err)
	assert.Equal(t, "5001", records[0].Order.ExternalID)
	assert.Equal(t, "12.34", records[0].Order.Total.StringFixed(2))
	assert.Equal(t, "Main Store", records[0].Order.LocationName)
}

func TestParse_EmptyTotalIsRowError(t *testing.T) {
	csv := "Order ID,Status,Total Amount,Location\n" +
		"3001,completed,,Main Store\n" +
		"3002,completed,\" \",Main Store\n" +
		"3003,completed,9.99,Main Store\n"

	records, err := Parse("orders.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, rec := range records[:2] {
		assert.Nil(t, rec.Order)
		assert.ErrorContains(t, rec.Err, "invalid total")
	}
	assert.Equal(t, 2, records[0].Line)

	require.NoError(t, records[2].Err)
	assert.Equal(t, "9.99", records[2].Order.Total.StringFixed(2))
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse("orders.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Parse("orders.csv", strings.NewReader("Status,Location\ncompleted,Main\n"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = Parse("orders.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
