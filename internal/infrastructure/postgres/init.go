package postgres

import (
	"fmt"
	"log"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/config"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the sales database and applies pool settings.
func Open(cfg config.SalesDB) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func MustInitDB(cfg *config.SalesConfig) *gorm.DB {
	db, err := Open(cfg.SalesDB)
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err)
	}
	return db
}

// AutoMigrate creates or updates every table from the GORM models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}
