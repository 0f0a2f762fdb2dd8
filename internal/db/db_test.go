package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partshop/partshop/internal/config"
	"github.com/partshop/partshop/internal/db/controller/entity"
	"github.com/partshop/partshop/internal/db/controller/settings"
	"github.com/partshop/partshop/internal/db/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{DB: config.DB{
		GormEngine: config.EngineSQLite,
		Name:       filepath.Join(t.TempDir(), "data", "db.sqlite"),
	}}
}

func TestOpen_CreatesSchema(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg)
	require.NoError(t, err)

	for _, table := range []string{"products", "branches", "settings"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	data, err := settings.Get(db)
	require.NoError(t, err)
	assert.Equal(t, settings.Data{}, data)
}

func TestOpen_KeepsData(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg)
	require.NoError(t, err)

	p := models.Product{ProductFields: models.ProductFields{Name: "Clutch"}}
	require.NoError(t, entity.Create(db, &p))
	require.NoError(t, settings.Put(db, settings.Data{"aboutText": "hello"}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// second start on the same file
	db, err = Open(cfg)
	require.NoError(t, err)

	list, err := entity.List[models.Product](db)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Clutch", list[0].Name)

	data, err := settings.Get(db)
	require.NoError(t, err)
	assert.Equal(t, settings.Data{"aboutText": "hello"}, data)
}

func TestOpen_UnknownEngine(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.GormEngine = "oracle"

	_, err := Open(cfg)
	require.ErrorIs(t, err, ErrUnknownEngine)
}
