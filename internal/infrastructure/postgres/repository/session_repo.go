package repository

import (
	"context"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/mappers"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSessionRepository struct {
	DB *gorm.DB
}

func NewDefaultSessionRepository(db *gorm.DB) *DefaultSessionRepository {
	return &DefaultSessionRepository{DB: db}
}

func (r *DefaultSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	model := &models.SessionModel{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt.UTC(),
	}
	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return translate("create session", err)
	}
	session.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultSessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	var model models.SessionModel
	if err := r.DB.WithContext(ctx).First(&model, "token = ?", token).Error; err != nil {
		return nil, translate("get session", err)
	}
	return mappers.ToDomainSession(&model), nil
}

func (r *DefaultSessionRepository) Delete(ctx context.Context, token string) error {
	err := r.DB.WithContext(ctx).Where("token = ?", token).Delete(&models.SessionModel{}).Error
	return translate("delete session", err)
}

func (r *DefaultSessionRepository) DeleteByUser(ctx context.Context, userID uint) error {
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SessionModel{}).Error
	return translate("delete user sessions", err)
}

func (r *DefaultSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Where("expires_at < ?", now.UTC()).Delete(&models.SessionModel{})
	if res.Error != nil {
		return 0, translate("purge sessions", res.Error)
	}
	return res.RowsAffected, nil
}
