package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	connectiondto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/connection"
)

const defaultSyncIntervalMinutes = 60

type StoreConnectionUsecase interface {
	Create(ctx context.Context, input *connectiondto.ConnectionInput) (*domain.StoreConnection, error)
	Update(ctx context.Context, id string, input *connectiondto.ConnectionInput) (*domain.StoreConnection, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.StoreConnection, error)
	List(ctx context.Context) ([]*domain.StoreConnection, error)
	Runs(ctx context.Context, id string, limit int) ([]*domain.SyncRun, error)
	Failures(ctx context.Context, runID string) ([]*domain.ImportFailure, error)
}

type DefaultStoreConnectionUsecase struct {
	ConnectionRepo domain.StoreConnectionRepository
	RunRepo        domain.SyncRunRepository
}

func NewDefaultStoreConnectionUsecase(connectionRepo domain.StoreConnectionRepository, runRepo domain.SyncRunRepository) *DefaultStoreConnectionUsecase {
	return &DefaultStoreConnectionUsecase{
		ConnectionRepo: connectionRepo,
		RunRepo:        runRepo,
	}
}

func validateConnection(input *connectiondto.ConnectionInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domain.Validationf("name is required")
	}
	if err := validateHTTPURL("store_url", input.StoreURL); err != nil {
		return err
	}
	if input.ConsumerKey == "" || input.ConsumerSecret == "" {
		return domain.Validationf("consumer key and secret are required")
	}
	if input.SyncIntervalMinutes < 0 {
		return domain.Validationf("sync interval must be at least 1 minute")
	}
	if input.NotifyURL != "" {
		if err := validateHTTPURL("notify_url", input.NotifyURL); err != nil {
			return err
		}
	}
	if p := strings.ToLower(input.Platform); p != "" && p != domain.PlatformWooCommerce {
		return domain.Validationf("unsupported platform %q", input.Platform)
	}
	return nil
}

func validateHTTPURL(field, raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.Validationf("%s must be an http(s) URL", field)
	}
	return nil
}

func applyConnectionInput(conn *domain.StoreConnection, input *connectiondto.ConnectionInput) {
	conn.Name = strings.TrimSpace(input.Name)
	conn.StoreURL = strings.TrimRight(strings.TrimSpace(input.StoreURL), "/")
	conn.ConsumerKey = input.ConsumerKey
	conn.ConsumerSecret = input.ConsumerSecret
	conn.IsActive = input.IsActive
	conn.AutoSync = input.AutoSync
	conn.SyncIntervalMinutes = input.SyncIntervalMinutes
	if conn.SyncIntervalMinutes == 0 {
		conn.SyncIntervalMinutes = defaultSyncIntervalMinutes
	}
	conn.NotifyURL = strings.TrimSpace(input.NotifyURL)
}

func (uc *DefaultStoreConnectionUsecase) Create(ctx context.Context, input *connectiondto.ConnectionInput) (*domain.StoreConnection, error) {
	if err := validateConnection(input); err != nil {
		return nil, err
	}

	conn := &domain.StoreConnection{
		ID:       uuid.NewString(),
		Platform: domain.PlatformWooCommerce,
	}
	applyConnectionInput(conn, input)

	if err := uc.ConnectionRepo.Create(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func (uc *DefaultStoreConnectionUsecase) Update(ctx context.Context, id string, input *connectiondto.ConnectionInput) (*domain.StoreConnection, error) {
	conn, err := uc.ConnectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// an empty secret keeps the stored one
	if input.ConsumerSecret == "" {
		input.ConsumerSecret = conn.ConsumerSecret
	}
	if err := validateConnection(input); err != nil {
		return nil, err
	}

	applyConnectionInput(conn, input)
	if err := uc.ConnectionRepo.Update(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func (uc *DefaultStoreConnectionUsecase) Delete(ctx context.Context, id string) error {
	return uc.ConnectionRepo.Delete(ctx, id)
}

func (uc *DefaultStoreConnectionUsecase) Get(ctx context.Context, id string) (*domain.StoreConnection, error) {
	return uc.ConnectionRepo.GetByID(ctx, id)
}

func (uc *DefaultStoreConnectionUsecase) List(ctx context.Context) ([]*domain.StoreConnection, error) {
	return uc.ConnectionRepo.List(ctx)
}

func (uc *DefaultStoreConnectionUsecase) Runs(ctx context.Context, id string, limit int) ([]*domain.SyncRun, error) {
	if _, err := uc.ConnectionRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return uc.RunRepo.ListRuns(ctx, id, limit)
}

func (uc *DefaultStoreConnectionUsecase) Failures(ctx context.Context, runID string) ([]*domain.ImportFailure, error) {
	if _, err := uc.RunRepo.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	return uc.RunRepo.ListFailures(ctx, runID)
}
