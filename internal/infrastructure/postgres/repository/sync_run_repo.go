package repository

import (
	"context"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/mappers"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSyncRunRepository struct {
	DB *gorm.DB
}

func NewDefaultSyncRunRepository(db *gorm.DB) *DefaultSyncRunRepository {
	return &DefaultSyncRunRepository{DB: db}
}

func (r *DefaultSyncRunRepository) CreateRun(ctx context.Context, run *domain.SyncRun, failures []*domain.ImportFailure) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMSyncRun(run)).Error; err != nil {
			return err
		}
		if len(failures) == 0 {
			return nil
		}
		failureModels := make([]*models.ImportFailureModel, len(failures))
		for i, f := range failures {
			f.SyncRunID = run.ID
			failureModels[i] = mappers.ToGORMImportFailure(f)
		}
		return tx.CreateInBatches(failureModels, 100).Error
	})
	return translate("create sync run", err)
}

func (r *DefaultSyncRunRepository) ListRuns(ctx context.Context, connectionID string, limit int) ([]*domain.SyncRun, error) {
	query := r.DB.WithContext(ctx).Where("connection_id = ?", connectionID).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var runModels []models.SyncRunModel
	if err := query.Find(&runModels).Error; err != nil {
		return nil, translate("list sync runs", err)
	}

	runs := make([]*domain.SyncRun, len(runModels))
	for i := range runModels {
		runs[i] = mappers.ToDomainSyncRun(&runModels[i])
	}
	return runs, nil
}

func (r *DefaultSyncRunRepository) GetRun(ctx context.Context, id string) (*domain.SyncRun, error) {
	var model models.SyncRunModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate("get sync run", err)
	}
	return mappers.ToDomainSyncRun(&model), nil
}

func (r *DefaultSyncRunRepository) ListFailures(ctx context.Context, runID string) ([]*domain.ImportFailure, error) {
	var failureModels []models.ImportFailureModel
	if err := r.DB.WithContext(ctx).Where("sync_run_id = ?", runID).Order("id ASC").Find(&failureModels).Error; err != nil {
		return nil, translate("list import failures", err)
	}

	failures := make([]*domain.ImportFailure, len(failureModels))
	for i := range failureModels {
		failures[i] = mappers.ToDomainImportFailure(&failureModels[i])
	}
	return failures, nil
}
