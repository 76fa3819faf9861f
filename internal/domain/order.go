package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusCompleted  OrderStatus = "completed"
	StatusProcessing OrderStatus = "processing"
	StatusRefunded   OrderStatus = "refunded"
	StatusPending    OrderStatus = "pending"
	StatusCancelled  OrderStatus = "cancelled"
	StatusFailed     OrderStatus = "failed"
	StatusOnHold     OrderStatus = "on-hold"
)

// KnownStatuses lists the marketplace statuses a grant may reference.
var KnownStatuses = []OrderStatus{
	StatusCompleted,
	StatusProcessing,
	StatusRefunded,
	StatusPending,
	StatusCancelled,
	StatusFailed,
	StatusOnHold,
}

type OrderSource string

const (
	SourceWooCommerce OrderSource = "woocommerce"
	SourceUpload      OrderSource = "upload"
)

type CustomerInfo struct {
	Name            string
	Email           string
	Phone           string
	BillingAddress  string
	ShippingAddress string
}

type Order struct {
	ID           uint
	ExternalID   string
	LocationID   uint
	LocationName string
	Status       OrderStatus
	Amount       decimal.Decimal
	RefundAmount decimal.Decimal
	Fees         FeeBreakdown
	OrderDate    time.Time
	Customer     CustomerInfo
	Source       OrderSource
	ConnectionID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RawOrder keeps the marketplace payload an order was mapped from.
type RawOrder struct {
	ExternalID   string
	ConnectionID string
	Payload      []byte
}

type OrderFilter struct {
	// nil means every location, an empty slice means none
	LocationIDs []uint
	// nil or empty means every status
	Statuses []OrderStatus
	From     time.Time
	To       time.Time
	Page     int
	Limit    int
}

type OrderRepository interface {
	ExistsByExternalID(ctx context.Context, externalID string) (bool, error)
	CreateOrder(ctx context.Context, order *Order, raw *RawOrder) error
	GetOrders(ctx context.Context, filter OrderFilter) ([]*Order, int64, error)
	DeleteOrders(ctx context.Context, ids []uint) (int64, error)
	CountByLocation(ctx context.Context, locationIDs []uint) (map[uint]int64, error)
}
