package setup

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/config"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	publisher "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/kafka"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.SalesConfig
	DB           *gorm.DB
	SQLDB        *sql.DB
	Events       domain.EventPublisher
	Registry     *prometheus.Registry
	Repositories *Repositories
	Logger       *slog.Logger

	closers []io.Closer
}

type Repositories struct {
	OrderRepo      domain.OrderRepository
	LocationRepo   domain.LocationRepository
	ReportRepo     domain.ReportRepository
	UserRepo       domain.UserRepository
	AccessRepo     domain.AccessRepository
	SessionRepo    domain.SessionRepository
	ConnectionRepo domain.StoreConnectionRepository
	SyncRunRepo    domain.SyncRunRepository
}

func InitializeDependencies(cfg *config.SalesConfig, logger *slog.Logger) (*Dependencies, error) {
	db, err := postgres.Open(cfg.SalesDB)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}

	deps := &Dependencies{
		Config:   cfg,
		DB:       db,
		SQLDB:    sqlDB,
		Registry: newRegistry(),
		Logger:   logger,
		Repositories: &Repositories{
			OrderRepo:      repository.NewDefaultOrderRepository(db),
			LocationRepo:   repository.NewDefaultLocationRepository(db),
			ReportRepo:     repository.NewDefaultReportRepository(db),
			UserRepo:       repository.NewDefaultUserRepository(db),
			AccessRepo:     repository.NewDefaultAccessRepository(db),
			SessionRepo:    repository.NewDefaultSessionRepository(db),
			ConnectionRepo: repository.NewDefaultStoreConnectionRepository(db),
			SyncRunRepo:    repository.NewDefaultSyncRunRepository(db),
		},
	}
	deps.closers = append(deps.closers, sqlDB)

	deps.Events = publisher.NewSalesEventPublisher(initPublisher(deps, cfg.KafkaService), cfg.KafkaService.Topic)
	return deps, nil
}

func initPublisher(deps *Dependencies, cfg config.KafkaService) domain.PublisherPort {
	if !cfg.Enabled {
		deps.Logger.Info("kafka disabled, events are dropped")
		return publisher.NoopPublisher{}
	}
	pub := publisher.NewDefaultKafkaPublisher([]string{cfg.Broker()})
	deps.closers = append(deps.closers, pub)
	deps.Logger.Info("kafka publisher ready", "broker", cfg.Broker(), "topic", cfg.Topic)
	return pub
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Close releases the publisher and the database pool, newest first.
func (d *Dependencies) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
