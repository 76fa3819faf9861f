package setup

import (
	"fmt"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/metrics"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/notifier"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/woocommerce"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
	syncusecase "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/sync"
)

type UseCases struct {
	AccessUsecase     usecase.AccessUsecase
	LocationUsecase   *usecase.DefaultLocationUsecase
	ReportUsecase     usecase.ReportUsecase
	OrderUsecase      usecase.OrderUsecase
	UserUsecase       usecase.UserUsecase
	AuthUsecase       usecase.AuthUsecase
	UploadUsecase     usecase.UploadUsecase
	ConnectionUsecase usecase.StoreConnectionUsecase
	Importer          *syncusecase.Importer
	SyncEngine        *syncusecase.Engine
	HTTPMetrics       *metrics.HTTPMetrics
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	cfg := deps.Config
	repos := deps.Repositories

	loc, err := cfg.Report.Location()
	if err != nil {
		return nil, fmt.Errorf("report timezone %q: %w", cfg.Report.Timezone, err)
	}

	authUsecase, err := usecase.NewDefaultAuthUsecase(repos.UserRepo, repos.SessionRepo, cfg.Auth.SessionTTL, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth usecase: %w", err)
	}

	accessUsecase := usecase.NewDefaultAccessUsecase(repos.AccessRepo, repos.UserRepo, repos.LocationRepo)
	locationUsecase := usecase.NewDefaultLocationUsecase(repos.LocationRepo, repos.OrderRepo, accessUsecase)

	syncMetrics := metrics.NewSyncMetrics(deps.Registry)
	importer := syncusecase.NewImporter(
		repos.OrderRepo,
		locationUsecase,
		deps.Events,
		syncMetrics,
		cfg.Sync.DefaultLocationName,
		deps.Logger.With("component", "importer"),
	)
	engine := syncusecase.NewEngine(
		repos.ConnectionRepo,
		repos.SyncRunRepo,
		woocommerce.NewClient(cfg.Sync.RequestTimeout),
		importer,
		deps.Events,
		notifier.NewSyncNotifier(cfg.Sync.NotifyTimeout, deps.Logger),
		syncMetrics,
		cfg.Sync.PageSize,
		deps.Logger.With("component", "sync"),
	)

	return &UseCases{
		AccessUsecase:     accessUsecase,
		LocationUsecase:   locationUsecase,
		ReportUsecase:     usecase.NewDefaultReportUsecase(repos.ReportRepo, repos.OrderRepo, accessUsecase, loc),
		OrderUsecase:      usecase.NewDefaultOrderUsecase(repos.OrderRepo, accessUsecase, loc),
		UserUsecase:       usecase.NewDefaultUserUsecase(repos.UserRepo, repos.SessionRepo, cfg.Auth.BcryptCost),
		AuthUsecase:       authUsecase,
		UploadUsecase:     usecase.NewDefaultUploadUsecase(importer, deps.Logger.With("component", "upload")),
		ConnectionUsecase: usecase.NewDefaultStoreConnectionUsecase(repos.ConnectionRepo, repos.SyncRunRepo),
		Importer:          importer,
		SyncEngine:        engine,
		HTTPMetrics:       metrics.NewHTTPMetrics(deps.Registry),
	}, nil
}
