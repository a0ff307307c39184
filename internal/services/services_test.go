package services

import (
	"fmt"
	"testing"

	"github.com/peopleops/attrition/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a unique in-memory DB per test name to avoid leakage
// via the shared cache and applies the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}
