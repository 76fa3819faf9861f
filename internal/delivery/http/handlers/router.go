package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/config"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/response"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/metrics"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterDeps struct {
	Auth        usecase.AuthUsecase
	Access      usecase.AccessUsecase
	Reports     usecase.ReportUsecase
	Orders      usecase.OrderUsecase
	Locations   usecase.LocationUsecase
	Users       usecase.UserUsecase
	Uploads     usecase.UploadUsecase
	Connections usecase.StoreConnectionUsecase
	Sync        SyncRunner
	DB          Pinger

	AuthConfig  config.Auth
	MaxUploadMB int64
	Metrics     *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
	Logger      *slog.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	authHandler := NewAuthHandler(deps.Auth, deps.AuthConfig)
	reportHandler := NewReportHandler(deps.Reports)
	orderHandler := NewOrderHandler(deps.Orders)
	locationHandler := NewLocationHandler(deps.Locations)
	userHandler := NewUserHandler(deps.Users, deps.Access)
	uploadHandler := NewUploadHandler(deps.Uploads, deps.MaxUploadMB)
	connectionHandler := NewConnectionHandler(deps.Connections, deps.Sync)

	page := func(pageID string) func(http.Handler) http.Handler {
		return RequirePage(deps.Access, pageID, false)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	if deps.Metrics != nil {
		r.Use(Metrics(deps.Metrics))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if deps.DB != nil {
			if err := deps.DB.PingContext(r.Context()); err != nil {
				respondWithJSON(w, http.StatusServiceUnavailable, response.StatusResponse{Status: "database unavailable"})
				return
			}
		}
		respondWithJSON(w, http.StatusOK, response.StatusResponse{Status: "ok"})
	})
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(deps.Auth, deps.AuthConfig.CookieName))

			r.Post("/auth/logout", authHandler.handleLogout)
			r.Get("/auth/me", authHandler.handleMe)
			r.Post("/auth/change-password", authHandler.handleChangePassword)

			r.With(page(domain.PageDashboard)).Get("/dashboard/summary", reportHandler.handleSummary)
			r.With(page(domain.PageReports)).Get("/dashboard/monthly-breakdown", reportHandler.handleMonthlyBreakdown)
			r.With(page(domain.PageOrders)).Get("/orders", orderHandler.handleList)
			r.Get("/locations", locationHandler.handleList)
			r.With(RequirePage(deps.Access, domain.PageUpload, true)).Post("/upload", uploadHandler.handleUpload)
			r.With(page(domain.PageSync)).Get("/sync-status/{platform}", connectionHandler.handleStatus)

			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin)

				r.Post("/orders/bulk-delete", orderHandler.handleBulkDelete)
				r.Post("/locations", locationHandler.handleCreate)
				r.Delete("/locations", locationHandler.handleDelete)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.handleList)
					r.Post("/", userHandler.handleCreate)
					r.Get("/{id}", userHandler.handleGet)
					r.Put("/{id}", userHandler.handleUpdate)
					r.Delete("/{id}", userHandler.handleDelete)
					r.Get("/{id}/access", userHandler.handleGetAccess)
					r.Post("/{id}/locations", userHandler.handleReplaceLocations)
					r.Post("/{id}/permissions", userHandler.handleReplacePermissions)
					r.Post("/{id}/statuses", userHandler.handleReplaceStatuses)
				})

				r.Route("/store-connections", func(r chi.Router) {
					r.Get("/", connectionHandler.handleList)
					r.Post("/", connectionHandler.handleCreate)
					r.Get("/{id}", connectionHandler.handleGet)
					r.Put("/{id}", connectionHandler.handleUpdate)
					r.Delete("/{id}", connectionHandler.handleDelete)
					r.Post("/{id}/sync", connectionHandler.handleSync)
					r.Get("/{id}/runs", connectionHandler.handleRuns)
				})
				r.Get("/sync-runs/{id}/failures", connectionHandler.handleFailures)
			})
		})
	})

	return r
}
