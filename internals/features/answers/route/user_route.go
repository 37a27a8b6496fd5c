package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/answers/controller"
)

// 👤 Response-set routes for any authenticated identity. Ownership scoping
// happens inside the answers service, so admins share the same endpoints.
func AnswerUserRoutes(router fiber.Router, db *gorm.DB) {
	answerCtrl := controller.NewAnswerQuestionnaireController(db)
	slotCtrl := controller.NewAnswerQuestionController(db)
	selectionCtrl := controller.NewAnswerOptionController(db)

	answers := router.Group("/answers")
	answers.Post("/", answerCtrl.CreateAnswer)           // ➕ start attempt (slot skeleton)
	answers.Get("/", answerCtrl.GetAllAnswers)           // 📄 own sets (admin: all)
	answers.Get("/:id", answerCtrl.GetAnswerByID)        // 🔍 shallow
	answers.Get("/:id/expand", answerCtrl.ExpandAnswer)  // 🔍 slots + selections
	answers.Post("/:id/expand", answerCtrl.SubmitAnswer) // ➕ legacy single-shot submission
	answers.Delete("/:id", answerCtrl.DeleteAnswer)

	slots := router.Group("/answer-questions")
	slots.Get("/", slotCtrl.GetAllAnswerQuestions) // ?answer_id=
	slots.Get("/:id", slotCtrl.GetAnswerQuestionByID)
	slots.Put("/:id", slotCtrl.UpdateAnswerQuestion)

	selections := router.Group("/answer-options")
	selections.Post("/", selectionCtrl.CreateAnswerOption)
	selections.Get("/", selectionCtrl.GetAllAnswerOptions) // ?answer_question_id=
	selections.Get("/:id", selectionCtrl.GetAnswerOptionByID)
	selections.Delete("/:id", selectionCtrl.DeleteAnswerOption)
}
