package middlewares

import (
	"strings"

	"agenda.link/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the Locals key the auth middleware stores the
// authenticated user id under.
const UserIDKey = "userID"

// Auth guards a route group with bearer-token authentication.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token not provided"})
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := token.Parse(raw, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// CurrentUserID reads the authenticated user id set by Auth.
func CurrentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDKey).(uint)
	return id
}
