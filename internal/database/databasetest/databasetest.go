// Package databasetest provides migrated SQLite databases for tests.
package databasetest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/order-service/internal/config"
	"github.com/Additional-Code/order-service/internal/database"
	"github.com/Additional-Code/order-service/internal/migration"
)

// Schema is the schema name SQLite exposes for the primary database.
const Schema = config.SQLiteSchema

// New opens a file-backed SQLite database in a temporary directory, applies all migrations
// and closes it when the test finishes.
func New(t *testing.T) *database.Connections {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", filepath.Join(t.TempDir(), "orders.db"))
	conns, err := database.Open(config.Database{
		Driver:       "sqlite",
		WriterDSN:    dsn,
		Schema:       Schema,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conns.Close()
	})

	mig, err := migration.New(conns, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, mig.Up(context.Background()))

	return conns
}

// Count returns the number of rows in the given table.
func Count(t *testing.T, conns *database.Connections, table string) int {
	t.Helper()

	var count int
	err := conns.Writer.DB.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	require.NoError(t, err)
	return count
}
