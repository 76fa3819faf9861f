package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderModel struct {
	ID              uint            `gorm:"primaryKey"`
	ExternalID      string          `gorm:"not null;uniqueIndex:idx_orders_external_id"`
	LocationID      uint            `gorm:"not null;index:idx_orders_location_date"`
	Location        LocationModel   `gorm:"foreignKey:LocationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Status          string          `gorm:"not null;index:idx_orders_status"`
	Amount          decimal.Decimal `gorm:"type:numeric;not null"`
	RefundAmount    decimal.Decimal `gorm:"type:numeric;not null"`
	PlatformFee     decimal.Decimal `gorm:"type:numeric;not null"`
	ProcessorFee    decimal.Decimal `gorm:"type:numeric;not null"`
	NetAmount       decimal.Decimal `gorm:"type:numeric;not null"`
	OrderDate       time.Time       `gorm:"not null;index:idx_orders_location_date"`
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BillingAddress  string
	ShippingAddress string
	Source          string `gorm:"not null"`
	ConnectionID    string `gorm:"index:idx_orders_connection"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// RawOrderModel keeps the marketplace payload next to the mapped order.
type RawOrderModel struct {
	ID           uint   `gorm:"primaryKey"`
	ExternalID   string `gorm:"not null;uniqueIndex:idx_raw_orders_external_id"`
	ConnectionID string `gorm:"index"`
	Payload      datatypes.JSON
	CreatedAt    time.Time
}

func (RawOrderModel) TableName() string {
	return "raw_orders"
}
