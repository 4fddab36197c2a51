//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/models"
)

type taggedRow struct {
	ID   uint `gorm:"primaryKey"`
	Tags models.StringArray
}

func TestPostgresMigrateAndTextArray(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("consulting_cms"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(postgres.Open(dsn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Ping(db))
	require.NoError(t, MigrateShared(db))
	require.NoError(t, MigrateModels(db, []interface{}{&taggedRow{}}))

	var dataType string
	require.NoError(t, db.Raw(
		"SELECT data_type FROM information_schema.columns WHERE table_name = ? AND column_name = ?",
		"tagged_rows", "tags",
	).Scan(&dataType).Error)
	assert.Equal(t, "ARRAY", dataType)

	row := taggedRow{Tags: models.StringArray{"go", "fiber"}}
	require.NoError(t, db.Create(&row).Error)

	var got taggedRow
	require.NoError(t, db.Where("? = ANY(tags)", "fiber").First(&got).Error)
	assert.Equal(t, models.StringArray{"go", "fiber"}, got.Tags)

	user := models.User{Email: "a@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&user).Error)
	err = db.Create(&models.User{Email: "a@example.com", Password: "x", Role: models.RoleAdmin}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
