package models

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type taggedRow struct {
	ID   uint `gorm:"primaryKey"`
	Tags StringArray
}

func TestStringArraySchemaParse(t *testing.T) {
	s, err := schema.Parse(&taggedRow{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("Tags")
	require.NotNil(t, field)
	assert.Equal(t, schema.DataType("stringarray"), field.DataType)
}

func TestStringArrayValueScan(t *testing.T) {
	in := StringArray{"erp", "data, analytics", `quo"ted`}

	v, err := in.Value()
	require.NoError(t, err)

	var out StringArray
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)

	var empty StringArray
	require.NoError(t, empty.Scan([]byte("{}")))
	assert.Empty(t, empty)
}

func TestStringArrayRoundTripThroughGorm(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&taggedRow{}))

	row := taggedRow{Tags: StringArray{"erp", "crm"}}
	require.NoError(t, db.Create(&row).Error)

	var got taggedRow
	require.NoError(t, db.First(&got, row.ID).Error)
	assert.Equal(t, StringArray{"erp", "crm"}, got.Tags)
}
