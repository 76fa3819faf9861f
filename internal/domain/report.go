package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Summary struct {
	StartMonth    string          `json:"startMonth,omitempty"`
	EndMonth      string          `json:"endMonth,omitempty"`
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalRefunds  decimal.Decimal `json:"totalRefunds"`
	PlatformFees  decimal.Decimal `json:"platformFees"`
	ProcessorFees decimal.Decimal `json:"processorFees"`
	NetDeposit    decimal.Decimal `json:"netDeposit"`
}

// MonthGroup is one month of the breakdown. Totals are computed from Orders.
type MonthGroup struct {
	Month        string          `json:"month"`
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalOrders  int64           `json:"totalOrders"`
	TotalRefunds decimal.Decimal `json:"totalRefunds"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	Orders       []*Order        `json:"orders"`
}

// SummaryFilter bounds the summary query. Zero times mean unbounded.
type SummaryFilter struct {
	LocationIDs []uint
	Statuses    []OrderStatus
	From        time.Time
	To          time.Time
}

type ReportRepository interface {
	Summarize(ctx context.Context, filter SummaryFilter) (*Summary, error)
	// LatestOrderDate returns the newest order date in scope, or nil.
	LatestOrderDate(ctx context.Context, filter SummaryFilter) (*time.Time, error)
}
