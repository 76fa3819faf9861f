package mappers

import (
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
)

func ToDomainLocation(model *models.LocationModel) *domain.Location {
	return &domain.Location{
		ID:        model.ID,
		Name:      model.Name,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMLocation(location *domain.Location) *models.LocationModel {
	return &models.LocationModel{
		ID:       location.ID,
		Name:     location.Name,
		IsActive: location.IsActive,
	}
}
