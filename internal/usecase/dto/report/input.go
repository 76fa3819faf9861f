package reportdto

import "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"

// SummaryQuery selects a month range in YYYY-MM form. Empty months mean the
// latest month with data in scope.
type SummaryQuery struct {
	LocationID *uint
	StartMonth string
	EndMonth   string
}

type BreakdownQuery struct {
	Year       *int
	LocationID *uint
	Statuses   []domain.OrderStatus
}

type OrdersQuery struct {
	LocationID *uint
	Statuses   []domain.OrderStatus
	Month      string
	Page       int
	Limit      int
}
