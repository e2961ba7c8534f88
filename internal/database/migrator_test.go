package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrator_RunIsRepeatable(t *testing.T) {
	db := NewTestDB(t)

	require.NoError(t, NewMigrator(db, DriverSQLite, nil).Run())

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)

	for _, table := range []string{"workflow_batches", "products", "product_images", "category_presets"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "dsn")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	q := "UPDATE t SET a = $1, b = $2 WHERE id = $3"
	assert.Equal(t, q, Rebind(DriverPostgres, q))
	assert.Equal(t, "UPDATE t SET a = ?, b = ? WHERE id = ?", Rebind(DriverSQLite, q))
}
