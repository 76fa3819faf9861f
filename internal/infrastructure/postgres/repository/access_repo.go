package repository

import (
	"context"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultAccessRepository stores the three grant tables. Every Replace call
// deletes the user's rows and inserts the new set in one transaction.
type DefaultAccessRepository struct {
	DB *gorm.DB
}

func NewDefaultAccessRepository(db *gorm.DB) *DefaultAccessRepository {
	return &DefaultAccessRepository{DB: db}
}

func (r *DefaultAccessRepository) GetGrants(ctx context.Context, userID uint) (*domain.AccessGrants, error) {
	db := r.DB.WithContext(ctx)
	grants := &domain.AccessGrants{
		LocationIDs: []uint{},
		Permissions: []domain.PagePermission{},
		Statuses:    []domain.OrderStatus{},
	}

	if err := db.Model(&models.UserLocationAccessModel{}).
		Where("user_id = ?", userID).
		Order("location_id ASC").
		Pluck("location_id", &grants.LocationIDs).Error; err != nil {
		return nil, translate("get location grants", err)
	}

	var permissionModels []models.UserPagePermissionModel
	if err := db.Where("user_id = ?", userID).Order("page_id ASC").Find(&permissionModels).Error; err != nil {
		return nil, translate("get page permissions", err)
	}
	for _, p := range permissionModels {
		grants.Permissions = append(grants.Permissions, domain.PagePermission{
			PageID:  p.PageID,
			CanView: p.CanView,
			CanEdit: p.CanEdit,
		})
	}

	var statuses []string
	if err := db.Model(&models.UserStatusAccessModel{}).
		Where("user_id = ?", userID).
		Order("status ASC").
		Pluck("status", &statuses).Error; err != nil {
		return nil, translate("get status grants", err)
	}
	for _, s := range statuses {
		grants.Statuses = append(grants.Statuses, domain.OrderStatus(s))
	}

	return grants, nil
}

func (r *DefaultAccessRepository) ReplaceLocations(ctx context.Context, userID uint, locationIDs []uint) error {
	rows := make([]models.UserLocationAccessModel, 0, len(locationIDs))
	for _, id := range locationIDs {
		rows = append(rows, models.UserLocationAccessModel{UserID: userID, LocationID: id})
	}
	return replaceGrants(ctx, r.DB, "replace location grants", userID, rows)
}

func (r *DefaultAccessRepository) ReplacePermissions(ctx context.Context, userID uint, permissions []domain.PagePermission) error {
	rows := make([]models.UserPagePermissionModel, 0, len(permissions))
	for _, p := range permissions {
		rows = append(rows, models.UserPagePermissionModel{
			UserID:  userID,
			PageID:  p.PageID,
			CanView: p.CanView,
			CanEdit: p.CanEdit,
		})
	}
	return replaceGrants(ctx, r.DB, "replace page permissions", userID, rows)
}

func (r *DefaultAccessRepository) ReplaceStatuses(ctx context.Context, userID uint, statuses []domain.OrderStatus) error {
	rows := make([]models.UserStatusAccessModel, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, models.UserStatusAccessModel{UserID: userID, Status: string(s)})
	}
	return replaceGrants(ctx, r.DB, "replace status grants", userID, rows)
}

func replaceGrants[T any](ctx context.Context, db *gorm.DB, op string, userID uint, rows []T) error {
	var table T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&table).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	return translate(op, err)
}
