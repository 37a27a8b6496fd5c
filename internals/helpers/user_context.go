// file: internals/helpers/user_context.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromToken reads the user_id stored in locals by the auth middleware.
func GetUserIDFromToken(c *fiber.Ctx) (string, error) {
	userIDRaw := c.Locals("user_id")
	userID, ok := userIDRaw.(string)
	if !ok || userID == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user_id not found in token")
	}
	return userID, nil
}

// IsAdmin reports whether the current token carries the admin role.
func IsAdmin(c *fiber.Ctx) bool {
	role, ok := c.Locals("userRole").(string)
	return ok && role == "admin"
}
