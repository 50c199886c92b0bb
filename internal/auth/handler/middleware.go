package handler

import (
	"strings"

	"github.com/Royal-dudy99/SwiftBooks18/internal/auth/service"
	"github.com/Royal-dudy99/SwiftBooks18/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// AuthRequired validates the bearer token and injects the authenticated
// identity into the request locals. Every protected route sits behind it.
func AuthRequired(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "authorization required"})
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid authorization header"})
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
		}

		c.Locals(constant.LocalsUserID, claims.UserID)
		c.Locals(constant.LocalsEmail, claims.Email)
		return c.Next()
	}
}
