package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/answers/dto"
	"kuesioner_backend/internals/features/answers/service"
	helper "kuesioner_backend/internals/helpers"
)

type AnswerQuestionnaireController struct {
	Service *service.AnswerService
}

func NewAnswerQuestionnaireController(db *gorm.DB) *AnswerQuestionnaireController {
	return &AnswerQuestionnaireController{Service: service.NewAnswerService(db)}
}

// =============================
// ➕ Start Response Set
// =============================
func (ctrl *AnswerQuestionnaireController) CreateAnswer(c *fiber.Ctx) error {
	var req dto.CreateAnswerQuestionnaireRequest
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

	responseSet, err := ctrl.Service.BeginResponse(req.QuestionnaireID, ident)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, dto.ToAnswerQuestionnaireDTO(*responseSet))
}

// =============================
// 📄 List Response Sets (own; admin sees all, may filter)
// =============================
func (ctrl *AnswerQuestionnaireController) GetAllAnswers(c *fiber.Ctx) error {
	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 10, 100)
	filter := service.ResponseSetFilter{
		QuestionnaireID: c.Query("questionnaire_id"),
		UserID:          c.Query("user_id"),
	}

	responseSets, total, err := ctrl.Service.ListResponseSets(ident, filter, paging.Limit, paging.Offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]dto.AnswerQuestionnaireDTO, 0, len(responseSets))
	for _, rs := range responseSets {
		response = append(response, dto.ToAnswerQuestionnaireDTO(rs))
	}

	return helper.JsonList(c, response, helper.BuildPagination(total, paging))
}

// =============================
// 🔍 Get Response Set (shallow)
// =============================
func (ctrl *AnswerQuestionnaireController) GetAnswerByID(c *fiber.Ctx) error {
	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	responseSet, err := ctrl.Service.GetResponseSet(c.Params("id"), ident, false)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, dto.ToAnswerQuestionnaireDTO(*responseSet))
}

// =============================
// 🔍 Expand Response Set (slots + selections)
// =============================
func (ctrl *AnswerQuestionnaireController) ExpandAnswer(c *fiber.Ctx) error {
	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	responseSet, err := ctrl.Service.GetResponseSet(c.Params("id"), ident, true)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, dto.ToAnswerQuestionnaireExpandedDTO(*responseSet))
}

// =============================
// ➕ Legacy single-shot submission (replace one question's slot in full)
// =============================
func (ctrl *AnswerQuestionnaireController) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.LegacyAnswerRequest
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

	optionIDs := make([]string, 0, len(req.AnswerOptions))
	for _, ref := range req.AnswerOptions {
		optionIDs = append(optionIDs, ref.OptionID)
	}

	slot, err := ctrl.Service.SubmitLegacyAnswer(c.Params("id"), ident, service.LegacyAnswer{
		QuestionID: req.QuestionID,
		Text:       req.Text,
		OptionIDs:  optionIDs,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, dto.ToAnswerQuestionDTO(*slot))
}

// =============================
// ❌ Delete Response Set
// =============================
func (ctrl *AnswerQuestionnaireController) DeleteAnswer(c *fiber.Ctx) error {
	ident, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	if err := ctrl.Service.DeleteResponseSet(c.Params("id"), ident); err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonDeleted(c)
}
