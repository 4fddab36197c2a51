// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/database"
)

// NewDB returns a private in-memory SQLite database with the shared models and
// any extra models migrated. It is closed when the test ends.
func NewDB(t *testing.T, extra ...interface{}) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateShared(db))
	require.NoError(t, database.MigrateModels(db, extra))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
