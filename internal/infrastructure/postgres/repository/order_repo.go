package repository

import (
	"context"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/mappers"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

const maxPageLimit = 500

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("external_id = ?", externalID).
		Count(&count).Error; err != nil {
		return false, translate("check order existence", err)
	}
	return count > 0, nil
}

// CreateOrder stores the order and its raw payload atomically. A second
// insert of the same external id fails with domain.ErrDuplicate.
func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order, raw *domain.RawOrder) error {
	orderModel := mappers.ToGORMOrder(order)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Location").Create(orderModel).Error; err != nil {
			return err
		}
		if raw != nil && len(raw.Payload) > 0 {
			if err := tx.Create(mappers.ToGORMRawOrder(raw)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translate("create order", err)
	}

	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	order.UpdatedAt = orderModel.UpdatedAt
	return nil
}

// filtered applies an OrderFilter to a query on the orders table.
func filtered(db *gorm.DB, locationIDs []uint, statuses []domain.OrderStatus) *gorm.DB {
	if locationIDs != nil {
		if len(locationIDs) == 0 {
			return db.Where("1 = 0")
		}
		db = db.Where("orders.location_id IN ?", locationIDs)
	}
	if len(statuses) > 0 {
		db = db.Where("orders.status IN ?", statuses)
	}
	return db
}

func (r *DefaultOrderRepository) GetOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int64, error) {
	baseQuery := func() *gorm.DB {
		q := filtered(r.DB.WithContext(ctx).Model(&models.OrderModel{}), filter.LocationIDs, filter.Statuses)
		if !filter.From.IsZero() {
			q = q.Where("orders.order_date >= ?", filter.From.UTC())
		}
		if !filter.To.IsZero() {
			q = q.Where("orders.order_date < ?", filter.To.UTC())
		}
		return q
	}

	var total int64
	if err := baseQuery().Count(&total).Error; err != nil {
		return nil, 0, translate("count orders", err)
	}

	query := baseQuery().Preload("Location").Order("orders.order_date DESC").Order("orders.id DESC")
	if filter.Limit > 0 {
		limit := min(filter.Limit, maxPageLimit)
		page := max(filter.Page, 1)
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var orderModels []models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, 0, translate("find orders", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, total, nil
}

// DeleteOrders removes orders and their raw payloads.
func (r *DefaultOrderRepository) DeleteOrders(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var externalIDs []string
		if err := tx.Model(&models.OrderModel{}).Where("id IN ?", ids).Pluck("external_id", &externalIDs).Error; err != nil {
			return err
		}
		if len(externalIDs) == 0 {
			return nil
		}
		if err := tx.Where("external_id IN ?", externalIDs).Delete(&models.RawOrderModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.OrderModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, translate("delete orders", err)
	}
	return deleted, nil
}

func (r *DefaultOrderRepository) CountByLocation(ctx context.Context, locationIDs []uint) (map[uint]int64, error) {
	var rows []struct {
		LocationID uint
		Count      int64
	}
	err := filtered(r.DB.WithContext(ctx).Model(&models.OrderModel{}), locationIDs, nil).
		Select("orders.location_id AS location_id, COUNT(*) AS count").
		Group("orders.location_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate("count orders by location", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.LocationID] = row.Count
	}
	return counts, nil
}
