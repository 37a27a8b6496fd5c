package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/answers/dto"
	"kuesioner_backend/internals/features/answers/service"
	helper "kuesioner_backend/internals/helpers"
)

type AnswerQuestionController struct {
	Service *service.AnswerService
}

func NewAnswerQuestionController(db *gorm.DB) *AnswerQuestionController {
	return &AnswerQuestionController{Service: service.NewAnswerService(db)}
}

// =============================
// 📄 List Slots of a Response Set
// =============================
func (ctrl *AnswerQuestionController) GetAllAnswerQuestions(c *fiber.Ctx) error {
	answerID := c.Query("answer_id")
	if answerID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "answer_id query parameter is required")
	}

	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	slots, err := ctrl.Service.ListSlots(answerID, ident)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]interface{}, 0, len(slots))
	for _, slot := range slots {
		response = append(response, dto.ToAnswerQuestionDTO(slot))
	}

	return helper.JsonOK(c, fiber.Map{"data": response})
}

// =============================
// 🔍 Get Slot by ID
// =============================
func (ctrl *AnswerQuestionController) GetAnswerQuestionByID(c *fiber.Ctx) error {
	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	slot, err := ctrl.Service.GetSlot(c.Params("id"), ident)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, dto.ToAnswerQuestionDTO(*slot))
}

// =============================
// ✏️ Update Slot (text- or option-shaped payload by question type)
// =============================
func (ctrl *AnswerQuestionController) UpdateAnswerQuestion(c *fiber.Ctx) error {
	var req dto.UpdateAnswerQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	slot, err := ctrl.Service.UpdateSlot(c.Params("id"), ident, service.SlotUpdate{
		Text:      req.Text,
		OptionIDs: req.OptionIDs,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, dto.ToAnswerQuestionDTO(*slot))
}
