package testutil

import (
	"database/sql"
	"testing"

	"github.com/tfauvel/diptrack/internal/db"
)

// NewTestDB returns a fully migrated in-memory proposal index, closed
// automatically when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in a UnitOfWork for sync tests.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
