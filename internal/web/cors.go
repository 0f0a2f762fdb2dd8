package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/partshop/partshop/internal/web/handler"
)

const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET,POST,PUT,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// CORS allows every origin on every response and answers any OPTIONS request
// with 200 {"ok":true} before routing.
func CORS(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, corsAllowOrigin)
	c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)

	if c.Method() == fiber.MethodOptions {
		return handler.OK(c, fiber.StatusOK)
	}

	return c.Next()
}
