package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/questionnaires/controller"
)

// 👤 Read-only routes for any authenticated identity.
func QuestionnaireUserRoutes(router fiber.Router, db *gorm.DB) {
	questionnaireCtrl := controller.NewQuestionnaireController(db)
	questionCtrl := controller.NewQuestionController(db)
	optionCtrl := controller.NewOptionController(db)

	questionnaires := router.Group("/questionnaires")
	questionnaires.Get("/", questionnaireCtrl.GetAllQuestionnaires)
	questionnaires.Get("/:id", questionnaireCtrl.GetQuestionnaireByID)
	questionnaires.Get("/:id/expand", questionnaireCtrl.ExpandQuestionnaire)

	questions := router.Group("/questions")
	questions.Get("/", questionCtrl.GetAllQuestions)
	questions.Get("/:id", questionCtrl.GetQuestionByID)
	questions.Get("/:id/expand", questionCtrl.ExpandQuestion)

	options := router.Group("/options")
	options.Get("/", optionCtrl.GetAllOptions)
	options.Get("/:id", optionCtrl.GetOptionByID)
}
