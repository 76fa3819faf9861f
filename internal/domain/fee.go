package domain

import "github.com/shopspring/decimal"

var (
	platformFeeRate   = decimal.RequireFromString("0.07")
	processorFeeRate  = decimal.RequireFromString("0.029")
	processorFeeFixed = decimal.RequireFromString("0.30")
)

type FeeBreakdown struct {
	PlatformFee  decimal.Decimal
	ProcessorFee decimal.Decimal
	NetAmount    decimal.Decimal
}

// CalculateFees derives the per-order fee split. Refunds reverse the platform
// fee but keep the processor fee. Values are exact and must only be rounded
// for display.
func CalculateFees(amount decimal.Decimal, status OrderStatus) FeeBreakdown {
	platformFee := amount.Mul(platformFeeRate)
	if status == StatusRefunded {
		platformFee = platformFee.Neg()
	}
	processorFee := amount.Mul(processorFeeRate).Add(processorFeeFixed)

	return FeeBreakdown{
		PlatformFee:  platformFee,
		ProcessorFee: processorFee,
		NetAmount:    amount.Sub(platformFee).Sub(processorFee),
	}
}
