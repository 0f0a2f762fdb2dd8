package handler

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"github.com/partshop/partshop/internal/db/models"
)

// ErrorBody is the json shape of every api error.
type ErrorBody struct {
	Error string `json:"error"`
}

// OKBody is the json shape of bare acknowledgements.
type OKBody struct {
	OK bool `json:"ok"`
}

// IsAPI reports whether the request targets the json api.
func IsAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), APIPrefix)
}

// Error answers with status and {"error": msg}.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorBody{Error: msg})
}

// NotFound answers 404 {"error":"Not found"}.
func NotFound(c *fiber.Ctx) error {
	return Error(c, fiber.StatusNotFound, MsgNotFound)
}

// OK answers status with {"ok": true}.
func OK(c *fiber.Ctx, status int) error {
	return c.Status(status).JSON(OKBody{OK: true})
}

// Body decodes the request body as a json object.
// An empty, malformed or non object body is an empty object, never an error.
func Body(c *fiber.Ctx) models.Body {
	body := models.Body{}

	raw := c.Body()
	if len(raw) == 0 {
		return body
	}

	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return models.Body{}
	}

	return body
}

// Blob decodes the request body as a json object whose numbers stay json.Number.
// Like Body, anything but an object is an empty object.
func Blob(c *fiber.Ctx) models.Body {
	body, err := models.DecodeBlob(c.Body())
	if err != nil {
		return models.Body{}
	}

	return body
}
