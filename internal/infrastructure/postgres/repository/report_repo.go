package repository

import (
	"context"
	"errors"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultReportRepository struct {
	DB *gorm.DB
}

func NewDefaultReportRepository(db *gorm.DB) *DefaultReportRepository {
	return &DefaultReportRepository{DB: db}
}

func (r *DefaultReportRepository) scoped(ctx context.Context, filter domain.SummaryFilter) *gorm.DB {
	q := filtered(r.DB.WithContext(ctx).Model(&models.OrderModel{}), filter.LocationIDs, filter.Statuses)
	if !filter.From.IsZero() {
		q = q.Where("orders.order_date >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		q = q.Where("orders.order_date < ?", filter.To.UTC())
	}
	return q
}

// Summarize aggregates in one pass. Refunded orders only feed total_refunds.
func (r *DefaultReportRepository) Summarize(ctx context.Context, filter domain.SummaryFilter) (*domain.Summary, error) {
	var stats struct {
		TotalSales    decimal.Decimal
		TotalOrders   int64
		TotalRefunds  decimal.Decimal
		PlatformFees  decimal.Decimal
		ProcessorFees decimal.Decimal
		NetDeposit    decimal.Decimal
	}

	refunded := string(domain.StatusRefunded)
	err := r.scoped(ctx, filter).
		Select(`COALESCE(SUM(CASE WHEN orders.status <> ? THEN orders.amount ELSE 0 END), 0) AS total_sales,
			COALESCE(SUM(CASE WHEN orders.status <> ? THEN 1 ELSE 0 END), 0) AS total_orders,
			COALESCE(SUM(CASE WHEN orders.status = ? THEN orders.amount ELSE 0 END), 0) AS total_refunds,
			COALESCE(SUM(CASE WHEN orders.status <> ? THEN orders.platform_fee ELSE 0 END), 0) AS platform_fees,
			COALESCE(SUM(CASE WHEN orders.status <> ? THEN orders.processor_fee ELSE 0 END), 0) AS processor_fees,
			COALESCE(SUM(CASE WHEN orders.status <> ? THEN orders.net_amount ELSE 0 END), 0) AS net_deposit`,
			refunded, refunded, refunded, refunded, refunded, refunded).
		Scan(&stats).Error
	if err != nil {
		return nil, translate("summarize orders", err)
	}

	return &domain.Summary{
		TotalSales:    stats.TotalSales,
		TotalOrders:   stats.TotalOrders,
		TotalRefunds:  stats.TotalRefunds,
		PlatformFees:  stats.PlatformFees,
		ProcessorFees: stats.ProcessorFees,
		NetDeposit:    stats.NetDeposit,
	}, nil
}

func (r *DefaultReportRepository) LatestOrderDate(ctx context.Context, filter domain.SummaryFilter) (*time.Time, error) {
	var latest models.OrderModel
	err := r.scoped(ctx, filter).
		Select("orders.order_date").
		Order("orders.order_date DESC").
		Take(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("latest order date", err)
	}

	date := latest.OrderDate.UTC()
	return &date, nil
}
