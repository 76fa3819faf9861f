package mappers

import (
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:                 model.ID,
		Username:           model.Username,
		PasswordHash:       model.PasswordHash,
		Role:               domain.Role(model.Role),
		IsActive:           model.IsActive,
		MustChangePassword: model.MustChangePassword,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:                 user.ID,
		Username:           user.Username,
		PasswordHash:       user.PasswordHash,
		Role:               string(user.Role),
		IsActive:           user.IsActive,
		MustChangePassword: user.MustChangePassword,
		CreatedAt:          user.CreatedAt,
	}
}

func ToDomainSession(model *models.SessionModel) *domain.Session {
	return &domain.Session{
		Token:     model.Token,
		UserID:    model.UserID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}
}
