// Package entity implements the list, create, update and delete endpoints
// shared by products and branches. Only the field set differs between them.
package entity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/partshop/partshop/internal/config"
	controller "github.com/partshop/partshop/internal/db/controller/entity"
	"github.com/partshop/partshop/internal/db/models"
	"github.com/partshop/partshop/internal/web/handler"
	"github.com/partshop/partshop/internal/web/router"
)

// Kind describes one id keyed collection: its path and how request fields
// become a stored record or an update answer.
type Kind[T controller.Record, F controller.Fields, V any] struct {
	// Path of the collection, e.g. /api/products.
	Path string
	// Normalize turns a request body into a complete field set.
	Normalize func(models.Body) F
	// Record builds the row to insert.
	Record func(F) T
	// View builds the update answer from the path id and the request fields.
	View func(uint64, F) V
}

// Service serves one Kind.
type Service[T controller.Record, F controller.Fields, V any] struct {
	handler.Service
	kind Kind[T, F, V]
	cfg  *config.Config
	db   *gorm.DB
}

// New returns an uninitialized service for kind.
func New[T controller.Record, F controller.Fields, V any](kind Kind[T, F, V]) *Service[T, F, V] {
	return &Service[T, F, V]{kind: kind}
}

// Init registers the collection routes.
func (s *Service[T, F, V]) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(s.kind.Path, s.List)
	app.Post(s.kind.Path, s.Create)
	app.Put(router.IDPath(s.kind.Path), router.WithID(s.Update))
	app.Delete(router.IDPath(s.kind.Path), router.WithID(s.Delete))

	return nil
}

// List answers every record, newest first.
func (s *Service[T, F, V]) List(c *fiber.Ctx) error {
	records, err := controller.List[T](s.db)
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// Create stores the normalized body and answers 201 with the stored record.
func (s *Service[T, F, V]) Create(c *fiber.Ctx) error {
	record := s.kind.Record(s.kind.Normalize(handler.Body(c)))

	if err := controller.Create(s.db, &record); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// Update replaces the fields of id. The answer echoes the normalized request, it is not read back.
func (s *Service[T, F, V]) Update(c *fiber.Ctx, id uint64) error {
	fields := s.kind.Normalize(handler.Body(c))

	if err := controller.Update[T](s.db, id, fields); err != nil {
		if errors.Is(err, controller.ErrNotFound) {
			return handler.NotFound(c)
		}

		return err
	}

	log.Debug().Str("path", s.kind.Path).Uint64("id", id).Msg("record updated")

	return c.JSON(s.kind.View(id, fields))
}

// Delete removes id.
func (s *Service[T, F, V]) Delete(c *fiber.Ctx, id uint64) error {
	if err := controller.Delete[T](s.db, id); err != nil {
		if errors.Is(err, controller.ErrNotFound) {
			return handler.NotFound(c)
		}

		return err
	}

	log.Debug().Str("path", s.kind.Path).Uint64("id", id).Msg("record deleted")

	return handler.OK(c, fiber.StatusOK)
}
