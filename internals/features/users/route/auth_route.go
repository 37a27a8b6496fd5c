package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/users/controller"
	"kuesioner_backend/internals/middlewares"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login) // 🔒 stricter limiter
}
