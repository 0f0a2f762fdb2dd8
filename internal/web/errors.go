package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/partshop/partshop/internal/web/handler"
)

// ErrorHandler answers errors returned by api handlers as json. Server side
// failures are logged and answered without details. Other paths use fiber's default.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if !handler.IsAPI(c) {
		return fiber.DefaultErrorHandler(c, err)
	}

	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			msg = fe.Message
		}
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("request failed")
	}

	return handler.Error(c, code, msg)
}
