package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateFees_Examples(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		status    OrderStatus
		platform  string
		processor string
		net       string
	}{
		{"processing", "20.00", StatusProcessing, "1.4", "0.88", "17.72"},
		{"refunded flips platform fee", "20.00", StatusRefunded, "-1.4", "0.88", "20.52"},
		{"zero amount keeps fixed fee", "0", StatusCompleted, "0", "0.3", "-0.3"},
		{"no intermediate rounding", "10.01", StatusCompleted, "0.7007", "0.59029", "8.71901"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fees := CalculateFees(decimal.RequireFromString(tt.amount), tt.status)
			assert.True(t, decimal.RequireFromString(tt.platform).Equal(fees.PlatformFee), fees.PlatformFee.String())
			assert.True(t, decimal.RequireFromString(tt.processor).Equal(fees.ProcessorFee), fees.ProcessorFee.String())
			assert.True(t, decimal.RequireFromString(tt.net).Equal(fees.NetAmount), fees.NetAmount.String())
		})
	}
}

func TestCalculateFees_Properties(t *testing.T) {
	statuses := append([]OrderStatus{""}, KnownStatuses...)
	for cents := int64(0); cents <= 100000; cents += 137 {
		amount := decimal.New(cents, -2)
		for _, status := range statuses {
			fees := CalculateFees(amount, status)

			wantPlatform := amount.Mul(decimal.RequireFromString("0.07"))
			if status == StatusRefunded {
				wantPlatform = wantPlatform.Neg()
			}
			wantProcessor := amount.Mul(decimal.RequireFromString("0.029")).Add(decimal.RequireFromString("0.30"))

			assert.True(t, wantPlatform.Equal(fees.PlatformFee))
			assert.True(t, wantProcessor.Equal(fees.ProcessorFee))
			assert.True(t, amount.Sub(fees.PlatformFee).Sub(fees.ProcessorFee).Equal(fees.NetAmount))
		}
	}
}
