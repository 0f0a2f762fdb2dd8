// Package settings serves the site settings blob under /api/settings.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/partshop/partshop/internal/config"
	controller "github.com/partshop/partshop/internal/db/controller/settings"
	"github.com/partshop/partshop/internal/web/handler"
)

// Path is the settings endpoint.
const Path = "/api/settings"

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// New returns an uninitialized settings handler.
func New() *Service {
	return &Service{}
}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
	app.Put(Path, s.Put)

	return nil
}

// Get answers the stored mapping, {} if nothing was saved yet.
func (s *Service) Get(c *fiber.Ctx) error {
	data, err := controller.Get(s.db)
	if err != nil {
		return err
	}

	return c.JSON(data)
}

// Put replaces the stored mapping with the body and echoes it. Values are kept as sent.
func (s *Service) Put(c *fiber.Ctx) error {
	data := controller.Data(handler.Blob(c))

	if err := controller.Put(s.db, data); err != nil {
		return err
	}

	log.Info().Int("keys", len(data)).Msg("site settings saved")

	return c.JSON(data)
}
