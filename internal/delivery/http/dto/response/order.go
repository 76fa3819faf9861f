package response

import (
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

// Money fields are encoded as decimal strings.
type OrderResponse struct {
	ID              uint            `json:"id"`
	OrderID         string          `json:"orderId"`
	LocationID      uint            `json:"locationId"`
	LocationName    string          `json:"locationName"`
	Status          string          `json:"status"`
	Amount          decimal.Decimal `json:"amount"`
	RefundAmount    decimal.Decimal `json:"refundAmount"`
	PlatformFee     decimal.Decimal `json:"platformFee"`
	ProcessorFee    decimal.Decimal `json:"processorFee"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	OrderDate       time.Time       `json:"orderDate"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	BillingAddress  string          `json:"billingAddress"`
	ShippingAddress string          `json:"shippingAddress"`
	Source          string          `json:"source"`
}

func FromOrder(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		OrderID:         o.ExternalID,
		LocationID:      o.LocationID,
		LocationName:    o.LocationName,
		Status:          string(o.Status),
		Amount:          o.Amount,
		RefundAmount:    o.RefundAmount,
		PlatformFee:     o.Fees.PlatformFee,
		ProcessorFee:    o.Fees.ProcessorFee,
		NetAmount:       o.Fees.NetAmount,
		OrderDate:       o.OrderDate,
		CustomerName:    o.Customer.Name,
		CustomerEmail:   o.Customer.Email,
		CustomerPhone:   o.Customer.Phone,
		BillingAddress:  o.Customer.BillingAddress,
		ShippingAddress: o.Customer.ShippingAddress,
		Source:          string(o.Source),
	}
}

func FromOrders(orders []*domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromOrder(o)
	}
	return out
}

type MonthGroupResponse struct {
	Month        string          `json:"month"`
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalOrders  int64           `json:"totalOrders"`
	TotalRefunds decimal.Decimal `json:"totalRefunds"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	Orders       []OrderResponse `json:"orders"`
}

func FromMonthGroups(groups []*domain.MonthGroup) []MonthGroupResponse {
	out := make([]MonthGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = MonthGroupResponse{
			Month:        g.Month,
			TotalSales:   g.TotalSales,
			TotalOrders:  g.TotalOrders,
			TotalRefunds: g.TotalRefunds,
			NetAmount:    g.NetAmount,
			Orders:       FromOrders(g.Orders),
		}
	}
	return out
}

type LocationResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"isActive"`
	OrderCount int64     `json:"orderCount"`
	CreatedAt  time.Time `json:"createdAt"`
}
