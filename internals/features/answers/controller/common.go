package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kuesioner_backend/internals/features/answers/service"
	helper "kuesioner_backend/internals/helpers"
)

var validate = validator.New()

// identityFromCtx builds the explicit identity passed into every service call.
func identityFromCtx(c *fiber.Ctx) (service.Identity, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return service.Identity{}, err
	}
	return service.Identity{UserID: userID, Admin: helper.IsAdmin(c)}, nil
}

// writeServiceError maps service errors to the HTTP boundary. Not-found and
// not-owned collapse to the same 404 on purpose.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	case errors.As(err, &ve):
		return helper.JsonValidationError(c, map[string]string{ve.Field: ve.Message})
	default:
		return helper.WriteDBError(c, err, "Internal server error")
	}
}
