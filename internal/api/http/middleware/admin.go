package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// AdminRequired gates the staff routes behind a static bearer token shared
// with the admin frontend. An empty configured token locks the routes
// closed rather than open.
func AdminRequired(token string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token == "" {
			return fiber.ErrUnauthorized
		}

		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		presented := strings.TrimSpace(parts[1])
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			return fiber.ErrUnauthorized
		}

		return c.Next()
	}
}
