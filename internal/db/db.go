package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peopleops/attrition/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectAndMigrate opens the embedded sqlite database at path and creates
// the schema if absent. There is no migration strategy beyond AutoMigrate:
// the three tables are stable and additive changes are handled by gorm.
func ConnectAndMigrate(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}
	conn, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate creates the schema if absent and sanity-checks the result.
// Shared with tests, which run it against in-memory databases.
func Migrate(conn *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.User{}, &models.Prediction{}, &models.ResetRequest{},
	}
	for _, m := range modelsToMigrate {
		if migErr := conn.AutoMigrate(m); migErr != nil {
			return fmt.Errorf("automigrate %T: %w", m, migErr)
		}
	}

	// sanity check: ensure required core tables exist
	for _, table := range []string{"users", "predictions", "password_reset_requests"} {
		if !conn.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}
