package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/mappers"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultLocationRepository struct {
	DB *gorm.DB
}

func NewDefaultLocationRepository(db *gorm.DB) *DefaultLocationRepository {
	return &DefaultLocationRepository{DB: db}
}

func (r *DefaultLocationRepository) FindByName(ctx context.Context, name string) (*domain.Location, error) {
	var model models.LocationModel
	if err := r.DB.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		return nil, translate("find location by name", err)
	}
	return mappers.ToDomainLocation(&model), nil
}

func (r *DefaultLocationRepository) GetByID(ctx context.Context, id uint) (*domain.Location, error) {
	var model models.LocationModel
	if err := r.DB.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translate("get location", err)
	}
	return mappers.ToDomainLocation(&model), nil
}

func (r *DefaultLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	model := mappers.ToGORMLocation(location)
	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translate("create location", err)
	}
	// GORM leaves a false bool to the column default.
	if !location.IsActive {
		if err := r.DB.WithContext(ctx).Model(model).Update("is_active", false).Error; err != nil {
			return translate("create location", err)
		}
	}
	location.ID = model.ID
	location.CreatedAt = model.CreatedAt
	location.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultLocationRepository) ListActive(ctx context.Context) ([]*domain.Location, error) {
	return r.list(ctx, r.DB.WithContext(ctx).Where("is_active = ?", true))
}

func (r *DefaultLocationRepository) ListActiveByIDs(ctx context.Context, ids []uint) ([]*domain.Location, error) {
	if len(ids) == 0 {
		return []*domain.Location{}, nil
	}
	return r.list(ctx, r.DB.WithContext(ctx).Where("is_active = ? AND id IN ?", true, ids))
}

func (r *DefaultLocationRepository) list(_ context.Context, query *gorm.DB) ([]*domain.Location, error) {
	var locationModels []models.LocationModel
	if err := query.Order("name ASC").Find(&locationModels).Error; err != nil {
		return nil, translate("list locations", err)
	}

	locations := make([]*domain.Location, len(locationModels))
	for i := range locationModels {
		locations[i] = mappers.ToDomainLocation(&locationModels[i])
	}
	return locations, nil
}

// Delete removes locations together with their access grants. Nothing is
// removed when any of the ids is still referenced by an order.
func (r *DefaultLocationRepository) Delete(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var blocking []uint
		if err := tx.Model(&models.OrderModel{}).
			Distinct("location_id").
			Where("location_id IN ?", ids).
			Pluck("location_id", &blocking).Error; err != nil {
			return err
		}
		if len(blocking) > 0 {
			sort.Slice(blocking, func(i, j int) bool { return blocking[i] < blocking[j] })
			return &domain.LocationInUseError{IDs: blocking}
		}

		if err := tx.Where("location_id IN ?", ids).Delete(&models.UserLocationAccessModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.LocationModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	var inUse *domain.LocationInUseError
	if errors.As(err, &inUse) {
		return inUse
	}
	return translate("delete locations", err)
}
