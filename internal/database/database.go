package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ozgurkara/todo-backend/internal/config"
	"github.com/ozgurkara/todo-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection pool. Each request checks a
// connection out of the pool for the duration of its queries; GORM returns
// it on completion regardless of outcome.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return db, nil
}

// Migrate runs AutoMigrate for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Todo{},
		&models.ErrorLog{},
	)
}

// Ping runs a trivial query against the database. Used by the health
// endpoint; a driver-level ping would skip the query path we care about.
func Ping(db *gorm.DB) error {
	return db.Exec("SELECT 1").Error
}
