package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/app/background"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/grpcapi"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/handlers"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

const healthPingTimeout = 3 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the gRPC health endpoint and the background tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()
			return runServe(cmd.Context(), app)
		},
	}
}

func runServe(parent context.Context, app *application) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := app.cfg
	uc := app.usecases

	health := grpcapi.NewHealthHandler(app.deps.SQLDB, healthPingTimeout, app.logger.With("component", "health"))
	grpcServer := grpc.NewServer()
	health.Register(grpcServer)

	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:        uc.AuthUsecase,
		Access:      uc.AccessUsecase,
		Reports:     uc.ReportUsecase,
		Orders:      uc.OrderUsecase,
		Locations:   uc.LocationUsecase,
		Users:       uc.UserUsecase,
		Uploads:     uc.UploadUsecase,
		Connections: uc.ConnectionUsecase,
		Sync:        uc.SyncEngine,
		DB:          app.deps.SQLDB,
		AuthConfig:  cfg.Auth,
		MaxUploadMB: cfg.HTTPServer.MaxUploadMB,
		Metrics:     uc.HTTPMetrics,
		Gatherer:    app.deps.Registry,
		Logger:      app.logger.With("component", "http"),
	})
	httpServer := &http.Server{
		Addr:         cfg.HTTPServer.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	tasks := background.NewBackgroundTasks(
		uc.SyncEngine,
		uc.AuthUsecase,
		health,
		background.Intervals{
			SyncTick:     cfg.Sync.SchedulerTick,
			SessionPurge: cfg.Auth.PurgeInterval,
			HealthCheck:  cfg.GRPCServer.HealthInterval,
		},
		app.logger.With("component", "background"),
	)
	tasks.StartAll(ctx)

	lis, err := net.Listen("tcp", cfg.GRPCServer.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCServer.Addr(), err)
	}

	errCh := make(chan error, 2)
	go func() {
		app.logger.Info("gRPC server started", "addr", cfg.GRPCServer.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()
	go func() {
		app.logger.Info("HTTP server started", "addr", cfg.HTTPServer.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		app.logger.Info("shutting down")
	case serveErr = <-errCh:
		app.logger.Error("server stopped", "error", serveErr)
		stop()
	}

	health.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("http shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()

	tasksDone := make(chan struct{})
	go func() {
		tasks.Wait()
		close(tasksDone)
	}()
	select {
	case <-tasksDone:
	case <-shutdownCtx.Done():
		app.logger.Warn("scheduled syncs still running at exit")
	}

	return serveErr
}
