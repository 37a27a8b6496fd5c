// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerRoute "kuesioner_backend/internals/features/answers/route"
	questionnaireRoute "kuesioner_backend/internals/features/questionnaires/route"
	userRoute "kuesioner_backend/internals/features/users/route"
	authMiddleware "kuesioner_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)
	questionnaireRoute.QuestionnaireUserRoutes(private, db)
	answerRoute.AnswerUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyAdmin("manage questionnaires"),
	)
	questionnaireRoute.QuestionnaireAdminRoutes(admin, db)
}
