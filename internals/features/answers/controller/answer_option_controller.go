package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/answers/dto"
	"kuesioner_backend/internals/features/answers/service"
	helper "kuesioner_backend/internals/helpers"
)

type AnswerOptionController struct {
	Service *service.AnswerService
}

func NewAnswerOptionController(db *gorm.DB) *AnswerOptionController {
	return &AnswerOptionController{Service: service.NewAnswerService(db)}
}

// =============================
// ➕ Select an Option for a Slot
// =============================
func (ctrl *AnswerOptionController) CreateAnswerOption(c *fiber.Ctx) error {
	var req dto.CreateAnswerOptionRequest
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

	selection, err := ctrl.Service.CreateSelection(req.AnswerQuestionID, req.OptionID, ident)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, dto.ToAnswerOptionDTO(*selection))
}

// =============================
// 📄 List Selections of a Slot
// =============================
func (ctrl *AnswerOptionController) GetAllAnswerOptions(c *fiber.Ctx) error {
	slotID := c.Query("answer_question_id")
	if slotID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "answer_question_id query parameter is required")
	}

	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	selections, err := ctrl.Service.ListSelections(slotID, ident)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]dto.AnswerOptionDTO, 0, len(selections))
	for _, sel := range selections {
		response = append(response, dto.ToAnswerOptionDTO(sel))
	}

	return helper.JsonOK(c, fiber.Map{"data": response})
}

// =============================
// 🔍 Get Selection by ID
// =============================
func (ctrl *AnswerOptionController) GetAnswerOptionByID(c *fiber.Ctx) error {
	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	selection, err := ctrl.Service.GetSelection(c.Params("id"), ident)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, dto.ToAnswerOptionDTO(*selection))
}

// =============================
// ❌ Deselect (delete selection)
// =============================
func (ctrl *AnswerOptionController) DeleteAnswerOption(c *fiber.Ctx) error {
	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	if err := ctrl.Service.DeleteSelection(c.Params("id"), ident); err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonDeleted(c)
}
