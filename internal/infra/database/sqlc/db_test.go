package sqlc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/infra/database"
)

func TestOpenSQLiteCreatesTable(t *testing.T) {
	cfg := database.Config{
		Driver:  database.DriverSQLite,
		Gateway: database.GatewaySQL,
		Path:    filepath.Join(t.TempDir(), "todos.db"),
	}

	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'todos'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "todos", name)

	// opening again keeps the existing table
	again, err := Open(cfg)
	require.NoError(t, err)
	assert.NoError(t, again.Close())
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(database.Config{Driver: "oracle", Gateway: database.GatewaySQL, DSN: "x"})
	assert.EqualError(t, err, "Unsupported database driver: oracle")
}
