// Package router holds the numeric id path rule shared by every /:id route.
package router

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// IDParam is the name of the id path parameter.
const IDParam = "id"

// IDPath returns base extended by the id parameter, e.g. /api/products/:id.
func IDPath(base string) string {
	return base + "/:" + IDParam
}

// ParseID accepts an unsigned decimal integer literal made of ascii digits only.
// Signs, spaces, hex and values above math.MaxInt64, which sql drivers refuse, are rejected.
func ParseID(raw string) (uint64, bool) {
	if raw == "" {
		return 0, false
	}

	for i := range len(raw) {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return uint64(id), true
}

// IDHandler handles a request whose id parameter passed ParseID.
type IDHandler func(c *fiber.Ctx, id uint64) error

// WithID wraps next so it only sees numeric ids. Any other id is passed on
// to the next matching route, which ends in the generic not found answer.
func WithID(next IDHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := ParseID(c.Params(IDParam))
		if !ok {
			return c.Next()
		}

		return next(c, id)
	}
}
