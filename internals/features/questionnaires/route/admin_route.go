package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/questionnaires/controller"
)

// 🛡️ Admin routes: authoring of questionnaires, questions, options.
// The caller mounts this under the admin group (auth + role check applied there).
func QuestionnaireAdminRoutes(router fiber.Router, db *gorm.DB) {
	questionnaireCtrl := controller.NewQuestionnaireController(db)
	questionCtrl := controller.NewQuestionController(db)
	optionCtrl := controller.NewOptionController(db)

	questionnaires := router.Group("/questionnaires")
	questionnaires.Post("/", questionnaireCtrl.CreateQuestionnaire)
	questionnaires.Put("/:id", questionnaireCtrl.UpdateQuestionnaire)
	questionnaires.Delete("/:id", questionnaireCtrl.DeleteQuestionnaire)

	questions := router.Group("/questions")
	questions.Post("/", questionCtrl.CreateQuestion)
	questions.Put("/:id", questionCtrl.UpdateQuestion)
	questions.Delete("/:id", questionCtrl.DeleteQuestion)

	options := router.Group("/options")
	options.Post("/", optionCtrl.CreateOption)
	options.Put("/:id", optionCtrl.UpdateOption)
	options.Delete("/:id", optionCtrl.DeleteOption)
}
