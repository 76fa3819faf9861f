package repository

import (
	"context"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/mappers"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) Create(ctx context.Context, user *domain.User) error {
	model := mappers.ToGORMUser(user)
	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translate("create user", err)
	}
	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultUserRepository) Update(ctx context.Context, user *domain.User) error {
	res := r.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":             user.Username,
			"password_hash":        user.PasswordHash,
			"role":                 string(user.Role),
			"is_active":            user.IsActive,
			"must_change_password": user.MustChangePassword,
			"updated_at":           time.Now().UTC(),
		})
	if res.Error != nil {
		return translate("update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update user", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes the user with every grant and session.
func (r *DefaultUserRepository) Delete(ctx context.Context, id uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, grant := range []any{
			&models.UserLocationAccessModel{},
			&models.UserPagePermissionModel{},
			&models.UserStatusAccessModel{},
			&models.SessionModel{},
		} {
			if err := tx.Where("user_id = ?", id).Delete(grant).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&models.UserModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate("delete user", err)
}

func (r *DefaultUserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var model models.UserModel
	if err := r.DB.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translate("get user", err)
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var model models.UserModel
	if err := r.DB.WithContext(ctx).First(&model, "username = ?", username).Error; err != nil {
		return nil, translate("get user by username", err)
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var userModels []models.UserModel
	if err := r.DB.WithContext(ctx).Order("username ASC").Find(&userModels).Error; err != nil {
		return nil, translate("list users", err)
	}

	users := make([]*domain.User, len(userModels))
	for i := range userModels {
		users[i] = mappers.ToDomainUser(&userModels[i])
	}
	return users, nil
}
