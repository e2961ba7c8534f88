package database

import (
	"database/sql"
	"testing"
)

// NewTestDB opens a fresh in-memory SQLite database with all migrations
// applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := NewMigrator(db, DriverSQLite, nil).Run(); err != nil {
		db.Close()
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
