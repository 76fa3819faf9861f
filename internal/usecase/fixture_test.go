package usecase

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	publisher "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/kafka"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/metrics"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/repository"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/testutil"
	syncusecase "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/sync"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	orderRepo    *repository.DefaultOrderRepository
	locationRepo *repository.DefaultLocationRepository
	userRepo     *repository.DefaultUserRepository
	accessRepo   *repository.DefaultAccessRepository
	sessionRepo  *repository.DefaultSessionRepository

	access    *DefaultAccessUsecase
	locations *DefaultLocationUsecase
	reports   *DefaultReportUsecase
	orders    *DefaultOrderUsecase
	users     *DefaultUserUsecase
	importer  *syncusecase.Importer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)

	f := &fixture{
		orderRepo:    repository.NewDefaultOrderRepository(db),
		locationRepo: repository.NewDefaultLocationRepository(db),
		userRepo:     repository.NewDefaultUserRepository(db),
		accessRepo:   repository.NewDefaultAccessRepository(db),
		sessionRepo:  repository.NewDefaultSessionRepository(db),
	}
	f.access = NewDefaultAccessUsecase(f.accessRepo, f.userRepo, f.locationRepo)
	f.locations = NewDefaultLocationUsecase(f.locationRepo, f.orderRepo, f.access)
	f.reports = NewDefaultReportUsecase(repository.NewDefaultReportRepository(db), f.orderRepo, f.access, time.UTC)
	f.orders = NewDefaultOrderUsecase(f.orderRepo, f.access, time.UTC)
	f.users = NewDefaultUserUsecase(f.userRepo, f.sessionRepo, bcrypt.MinCost)
	f.importer = syncusecase.NewImporter(
		f.orderRepo,
		f.locations,
		publisher.NewSalesEventPublisher(publisher.NoopPublisher{}, "sales-events"),
		metrics.NewSyncMetrics(prometheus.NewRegistry()),
		"Unknown Location",
		slog.New(slog.DiscardHandler),
	)
	return f
}

func (f *fixture) importOrder(t *testing.T, externalID, status, total, location string, created time.Time) {
	t.Helper()
	_, err := f.importer.Import(context.Background(), syncusecase.ImportOrderInput{
		Order: &domain.MarketplaceOrder{
			ExternalID:   externalID,
			Status:       status,
			Total:        decimal.RequireFromString(total),
			CreatedAt:    created,
			LocationName: location,
			HasLocation:  location != "",
		},
		Source: domain.SourceWooCommerce,
	})
	require.NoError(t, err)
}

func (f *fixture) createUser(t *testing.T, username string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     username,
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, f.userRepo.Create(context.Background(), user))
	return user
}

func (f *fixture) location(t *testing.T, name string) *domain.Location {
	t.Helper()
	loc, err := f.locationRepo.FindByName(context.Background(), name)
	require.NoError(t, err)
	return loc
}
