// file: internals/helpers/json_response.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Standard JSON envelopes
=================================*/

func JsonOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func JsonCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func JsonDeleted(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// JsonValidationError reports per-field failures (400 with field → message map).
func JsonValidationError(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  fields,
	})
}

// JsonList wraps page data with pagination meta.
func JsonList(c *fiber.Ctx, data interface{}, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":       data,
		"pagination": pagination,
	})
}
