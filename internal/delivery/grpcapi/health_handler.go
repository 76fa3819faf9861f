package grpcapi

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall "".
const ServiceName = "sales.SalesReportService"

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves grpc.health.v1 with a status that follows database
// reachability.
type HealthHandler struct {
	server  *health.Server
	db      Pinger
	timeout time.Duration
	logger  *slog.Logger
	serving bool
}

func NewHealthHandler(db Pinger, timeout time.Duration, logger *slog.Logger) *HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	h := &HealthHandler{
		server:  health.NewServer(),
		db:      db,
		timeout: timeout,
		logger:  logger,
	}
	h.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

func (h *HealthHandler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

func (h *HealthHandler) set(status healthpb.HealthCheckResponse_ServingStatus) {
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
}

// Check pings the database and updates the served status. It returns the
// ping error, if any.
func (h *HealthHandler) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	err := h.db.PingContext(ctx)
	serving := err == nil
	if serving != h.serving {
		if serving {
			h.logger.Info("database reachable, health is SERVING")
		} else {
			h.logger.Error("database unreachable, health is NOT_SERVING", "error", err)
		}
	}
	h.serving = serving

	if serving {
		h.set(healthpb.HealthCheckResponse_SERVING)
	} else {
		h.set(healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return err
}

// Shutdown marks every service NOT_SERVING for good.
func (h *HealthHandler) Shutdown() {
	h.server.Shutdown()
}
