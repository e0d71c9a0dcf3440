package migration

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/order-service/internal/config"
	"github.com/Additional-Code/order-service/internal/database"
)

func setupTestDB(t *testing.T) *database.Connections {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", filepath.Join(t.TempDir(), "migrate.db"))
	conns, err := database.Open(config.Database{
		Driver:       "sqlite",
		WriterDSN:    dsn,
		Schema:       "main",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conns.Close() })
	return conns
}

func tableExists(t *testing.T, conns *database.Connections, name string) bool {
	var count int
	err := conns.Writer.DB.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

func TestMigrator_UpDown(t *testing.T) {
	conns := setupTestDB(t)
	ctx := context.Background()

	mig, err := New(conns, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, mig.Up(ctx))
	assert.True(t, tableExists(t, conns, "t_orders"))
	assert.True(t, tableExists(t, conns, "t_order_line_items"))

	version, err := mig.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Re-applying is a no-op.
	require.NoError(t, mig.Up(ctx))

	require.NoError(t, mig.Down(ctx, 0, false))
	assert.False(t, tableExists(t, conns, "t_orders"))
	assert.False(t, tableExists(t, conns, "t_order_line_items"))

	// Nothing left to roll back.
	require.NoError(t, mig.Down(ctx, 1, true))
}

func TestGooseDialect(t *testing.T) {
	testCases := map[string]struct {
		driver        string
		expected      string
		expectedError string
	}{
		"mysql":    {driver: "mysql", expected: "mysql"},
		"postgres": {driver: "postgres", expected: "postgres"},
		"sqlite":   {driver: "sqlite", expected: "sqlite3"},
		"unknown":  {driver: "oracle", expectedError: "unsupported goose dialect"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			dialect, err := gooseDialect(tc.driver)
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dialect)
		})
	}
}
