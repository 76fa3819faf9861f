package mappers

import (
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
)

func ToDomainStoreConnection(model *models.StoreConnectionModel) *domain.StoreConnection {
	return &domain.StoreConnection{
		ID:                  model.ID,
		Platform:            model.Platform,
		Name:                model.Name,
		StoreURL:            model.StoreURL,
		ConsumerKey:         model.ConsumerKey,
		ConsumerSecret:      model.ConsumerSecret,
		IsActive:            model.IsActive,
		AutoSync:            model.AutoSync,
		SyncIntervalMinutes: model.SyncIntervalMinutes,
		NotifyURL:           model.NotifyURL,
		LastSyncAt:          model.LastSyncAt,
		LastOrderCount:      model.LastOrderCount,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMStoreConnection(conn *domain.StoreConnection) *models.StoreConnectionModel {
	return &models.StoreConnectionModel{
		ID:                  conn.ID,
		Platform:            conn.Platform,
		Name:                conn.Name,
		StoreURL:            conn.StoreURL,
		ConsumerKey:         conn.ConsumerKey,
		ConsumerSecret:      conn.ConsumerSecret,
		IsActive:            conn.IsActive,
		AutoSync:            conn.AutoSync,
		SyncIntervalMinutes: conn.SyncIntervalMinutes,
		NotifyURL:           conn.NotifyURL,
		LastSyncAt:          conn.LastSyncAt,
		LastOrderCount:      conn.LastOrderCount,
		CreatedAt:           conn.CreatedAt,
	}
}

func ToDomainSyncRun(model *models.SyncRunModel) *domain.SyncRun {
	return &domain.SyncRun{
		ID:           model.ID,
		ConnectionID: model.ConnectionID,
		State:        domain.SyncRunState(model.State),
		Imported:     model.Imported,
		Skipped:      model.Skipped,
		Pages:        model.Pages,
		Error:        model.Error,
		StartedAt:    model.StartedAt,
		FinishedAt:   model.FinishedAt,
	}
}

func ToGORMSyncRun(run *domain.SyncRun) *models.SyncRunModel {
	return &models.SyncRunModel{
		ID:           run.ID,
		ConnectionID: run.ConnectionID,
		State:        string(run.State),
		Imported:     run.Imported,
		Skipped:      run.Skipped,
		Pages:        run.Pages,
		Error:        run.Error,
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
	}
}

func ToDomainImportFailure(model *models.ImportFailureModel) *domain.ImportFailure {
	return &domain.ImportFailure{
		ID:         model.ID,
		SyncRunID:  model.SyncRunID,
		ExternalID: model.ExternalID,
		Reason:     model.Reason,
		CreatedAt:  model.CreatedAt,
	}
}

func ToGORMImportFailure(failure *domain.ImportFailure) *models.ImportFailureModel {
	return &models.ImportFailureModel{
		ID:         failure.ID,
		SyncRunID:  failure.SyncRunID,
		ExternalID: failure.ExternalID,
		Reason:     failure.Reason,
	}
}
