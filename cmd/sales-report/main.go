package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/app/setup"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/config"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/logger"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	rootCmd := &cobra.Command{
		Use:           "sales-report",
		Short:         "Multi-location sales reporting service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		syncCmd(),
		reportCmd(),
		createAdminCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// application bundles everything a command needs after startup.
type application struct {
	cfg      *config.SalesConfig
	logger   *slog.Logger
	deps     *setup.Dependencies
	usecases *setup.UseCases

	logCloser io.Closer
}

func bootstrap() (*application, error) {
	cfg := config.MustLoad()

	lg, logCloser, err := logger.Setup(cfg.LogConfig)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	deps, err := setup.InitializeDependencies(cfg, lg)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("init dependencies: %w", err)
	}

	usecases, err := setup.InitializeUseCases(deps)
	if err != nil {
		_ = deps.Close()
		_ = logCloser.Close()
		return nil, fmt.Errorf("init usecases: %w", err)
	}

	return &application{
		cfg:       cfg,
		logger:    lg,
		deps:      deps,
		usecases:  usecases,
		logCloser: logCloser,
	}, nil
}

func (a *application) Close() {
	if err := a.deps.Close(); err != nil {
		a.logger.Error("failed to release dependencies", "error", err)
	}
	_ = a.logCloser.Close()
}
