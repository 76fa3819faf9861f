package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/config"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/logger"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/migrate"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres"
	reportdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/report"
	userdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/user"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the SQL schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad()
			if _, _, err := logger.Setup(cfg.LogConfig); err != nil {
				return err
			}
			db, err := postgres.Open(cfg.SalesDB)
			if err != nil {
				return err
			}

			if args[0] == "up" {
				return migrate.Up(db, cfg.SalesDB.MigrationsPath)
			}
			return migrate.Down(db, cfg.SalesDB.MigrationsPath, steps)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func syncCmd() *cobra.Command {
	var connectionID string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one WooCommerce sync for a store connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			started := time.Now()
			result, err := app.usecases.SyncEngine.Run(cmd.Context(), connectionID)
			fmt.Fprintf(cmd.OutOrStdout(), "imported: %d, skipped: %d, took %s\n",
				result.Imported, result.Skipped, time.Since(started).Round(time.Millisecond))
			return err
		},
	}
	cmd.Flags().StringVar(&connectionID, "connection", "", "store connection id")
	_ = cmd.MarkFlagRequired("connection")
	return cmd
}

func reportCmd() *cobra.Command {
	var (
		year       int
		locationID uint
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the monthly breakdown as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			query := reportdto.BreakdownQuery{}
			if cmd.Flags().Changed("year") {
				query.Year = &year
			}
			if cmd.Flags().Changed("location") {
				query.LocationID = &locationID
			}

			// The CLI runs with operator rights.
			operator := &domain.User{Username: "cli", Role: domain.RoleAdmin, IsActive: true}
			groups, err := app.usecases.ReportUsecase.GetMonthlyBreakdown(cmd.Context(), operator, query)
			if err != nil {
				return err
			}
			return renderBreakdown(cmd, groups)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year, all years when omitted")
	cmd.Flags().UintVar(&locationID, "location", 0, "location id, all locations when omitted")
	return cmd
}

func renderBreakdown(cmd *cobra.Command, groups []*domain.MonthGroup) error {
	if len(groups) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no orders")
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Month", "Orders", "Sales", "Refunds", "Net")
	for _, g := range groups {
		if err := table.Append([]string{
			g.Month,
			strconv.FormatInt(g.TotalOrders, 10),
			g.TotalSales.StringFixed(2),
			g.TotalRefunds.StringFixed(2),
			g.NetAmount.StringFixed(2),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func createAdminCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("SALES_ADMIN_PASSWORD")
			}
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			return createAdmin(cmd.Context(), app, username, password)
		},
	}
	cmd.Flags().StringVar(&username, "username", "admin", "login name")
	cmd.Flags().StringVar(&password, "password", "", "password, falls back to SALES_ADMIN_PASSWORD")
	return cmd
}

func createAdmin(ctx context.Context, app *application, username, password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	mustChange := false
	user, err := app.usecases.UserUsecase.Create(ctx, &userdto.CreateUserInput{
		Username:           username,
		Password:           password,
		Role:               string(domain.RoleAdmin),
		MustChangePassword: &mustChange,
	})
	if err != nil {
		return err
	}
	app.logger.Info("admin created", "user_id", user.ID, "username", user.Username)
	return nil
}
