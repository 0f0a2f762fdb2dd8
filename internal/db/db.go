// Package db opens the partshop store and prepares its schema.
package db

import (
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/partshop/partshop/internal/config"
	"github.com/partshop/partshop/internal/db/controller/settings"
	"github.com/partshop/partshop/internal/db/dsn"
	"github.com/partshop/partshop/internal/db/models"
	"github.com/partshop/partshop/internal/logger/adapter/stdlogger"
)

const (
	dataDirPerm   = 0o750
	slowThreshold = 200 * time.Millisecond
)

// ErrUnknownEngine is returned for a DB.GormEngine partshop has no driver for.
var ErrUnknownEngine = errors.New("unknown gorm engine")

// Open connects to the configured engine, migrates the schema and makes sure the settings row exists.
// Existing tables and rows are never dropped.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newGormLogger(cfg.DevMode)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.DB.GormEngine)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates missing tables and the settings row.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Branch{},
		&models.Settings{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	if err := settings.Init(db); err != nil {
		return errors.Wrap(err, "failed to create settings row")
	}

	return nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineSQLite, "":
		if err := os.MkdirAll(filepath.Dir(cfg.DB.Name), dataDirPerm); err != nil {
			return nil, errors.Wrap(err, "can't create database directory")
		}

		return sqlite.Open(dsn.SQLite(cfg.DB.Name)), nil
	case config.EngineMySQL:
		return mysql.Open(dsn.MySQL(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Postgres(cfg)), nil
	default:
		return nil, errors.Wrap(ErrUnknownEngine, cfg.DB.GormEngine)
	}
}

// newGormLogger writes gorm warnings through zerolog, dev mode adds every statement.
func newGormLogger(devMode bool) gormlogger.Interface {
	level := gormlogger.Warn
	if devMode {
		level = gormlogger.Info
	}

	return gormlogger.New(
		stdlogger.NewWithLevel(zerolog.WarnLevel),
		gormlogger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
