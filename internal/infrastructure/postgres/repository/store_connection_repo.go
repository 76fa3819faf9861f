package repository

import (
	"context"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/mappers"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStoreConnectionRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreConnectionRepository(db *gorm.DB) *DefaultStoreConnectionRepository {
	return &DefaultStoreConnectionRepository{DB: db}
}

func (r *DefaultStoreConnectionRepository) Create(ctx context.Context, conn *domain.StoreConnection) error {
	model := mappers.ToGORMStoreConnection(conn)
	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translate("create store connection", err)
	}
	conn.CreatedAt = model.CreatedAt
	conn.UpdatedAt = model.UpdatedAt
	return nil
}

// Update saves the editable settings. Sync bookkeeping is left to RecordSync.
func (r *DefaultStoreConnectionRepository) Update(ctx context.Context, conn *domain.StoreConnection) error {
	res := r.DB.WithContext(ctx).
		Model(&models.StoreConnectionModel{}).
		Where("id = ?", conn.ID).
		Updates(map[string]any{
			"name":                  conn.Name,
			"store_url":             conn.StoreURL,
			"consumer_key":          conn.ConsumerKey,
			"consumer_secret":       conn.ConsumerSecret,
			"is_active":             conn.IsActive,
			"auto_sync":             conn.AutoSync,
			"sync_interval_minutes": conn.SyncIntervalMinutes,
			"notify_url":            conn.NotifyURL,
			"updated_at":            time.Now().UTC(),
		})
	if res.Error != nil {
		return translate("update store connection", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update store connection", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *DefaultStoreConnectionRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.StoreConnectionModel{}, "id = ?", id)
	if res.Error != nil {
		return translate("delete store connection", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete store connection", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *DefaultStoreConnectionRepository) GetByID(ctx context.Context, id string) (*domain.StoreConnection, error) {
	var model models.StoreConnectionModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate("get store connection", err)
	}
	return mappers.ToDomainStoreConnection(&model), nil
}

func (r *DefaultStoreConnectionRepository) List(ctx context.Context) ([]*domain.StoreConnection, error) {
	return r.find(r.DB.WithContext(ctx))
}

func (r *DefaultStoreConnectionRepository) ListByPlatform(ctx context.Context, platform string) ([]*domain.StoreConnection, error) {
	return r.find(r.DB.WithContext(ctx).Where("platform = ?", platform))
}

func (r *DefaultStoreConnectionRepository) ListAutoSync(ctx context.Context) ([]*domain.StoreConnection, error) {
	return r.find(r.DB.WithContext(ctx).Where("is_active = ? AND auto_sync = ?", true, true))
}

func (r *DefaultStoreConnectionRepository) find(query *gorm.DB) ([]*domain.StoreConnection, error) {
	var connModels []models.StoreConnectionModel
	if err := query.Order("created_at ASC").Find(&connModels).Error; err != nil {
		return nil, translate("list store connections", err)
	}

	conns := make([]*domain.StoreConnection, len(connModels))
	for i := range connModels {
		conns[i] = mappers.ToDomainStoreConnection(&connModels[i])
	}
	return conns, nil
}

func (r *DefaultStoreConnectionRepository) RecordSync(ctx context.Context, id string, at time.Time, orderCount int) error {
	err := r.DB.WithContext(ctx).
		Model(&models.StoreConnectionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_sync_at":     at.UTC(),
			"last_order_count": orderCount,
		}).Error
	return translate("record sync", err)
}
