package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/questionnaires/dto"
	"kuesioner_backend/internals/features/questionnaires/model"
	helper "kuesioner_backend/internals/helpers"
)

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// =============================
// ➕ Create Question (admin)
// =============================
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// parent must exist
	var questionnaire model.QuestionnaireModel
	if err := ctrl.DB.First(&questionnaire, "questionnaire_id = ?", req.QuestionnaireID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Questionnaire not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve questionnaire")
	}

	question := model.QuestionModel{
		QuestionQuestionnaireID: req.QuestionnaireID,
		QuestionName:            req.Name,
		QuestionType:            *req.QuestionType,
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		return helper.WriteDBError(c, err, "Failed to create question")
	}

	return helper.JsonCreated(c, dto.ToQuestionDTO(question))
}

// =============================
// 📄 List Questions (filter by questionnaire_id, name)
// =============================
func (ctrl *QuestionController) GetAllQuestions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	query := ctrl.DB.Model(&model.QuestionModel{})
	if questionnaireID := c.Query("questionnaire_id"); questionnaireID != "" {
		query = query.Where("question_questionnaire_id = ?", questionnaireID)
	}
	if name := c.Query("name"); name != "" {
		query = query.Where("LOWER(question_name) LIKE LOWER(?)", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count questions")
	}

	var questions []model.QuestionModel
	if err := query.Limit(paging.Limit).Offset(paging.Offset).Find(&questions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	response := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		response = append(response, dto.ToQuestionDTO(q))
	}

	return helper.JsonList(c, response, helper.BuildPagination(total, paging))
}

// =============================
// 🔍 Get Question by ID (shallow)
// =============================
func (ctrl *QuestionController) GetQuestionByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve question")
	}

	return helper.JsonOK(c, dto.ToQuestionDTO(question))
}

// =============================
// 🔍 Expand Question (options included)
// =============================
func (ctrl *QuestionController) ExpandQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	var question model.QuestionModel
	if err := ctrl.DB.Preload("Options").First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve question")
	}

	return helper.JsonOK(c, dto.ToQuestionExpandedDTO(question))
}

// =============================
// ✏️ Update Question (admin)
// =============================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve question")
	}

	if req.Name != nil {
		question.QuestionName = *req.Name
	}
	if req.QuestionType != nil {
		// switching to text is only allowed while the question has no options
		if *req.QuestionType == model.QuestionTypeText {
			var optCount int64
			if err := ctrl.DB.Model(&model.OptionModel{}).Where("option_question_id = ?", id).Count(&optCount).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check options")
			}
			if optCount > 0 {
				return fiber.NewError(fiber.StatusBadRequest, "options not allowed for text questions")
			}
		}
		question.QuestionType = *req.QuestionType
	}

	if err := ctrl.DB.Save(&question).Error; err != nil {
		return helper.WriteDBError(c, err, "Failed to update question")
	}

	return helper.JsonOK(c, dto.ToQuestionDTO(question))
}

// =============================
// ❌ Delete Question (admin)
// =============================
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.QuestionModel{}, "question_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	return helper.JsonDeleted(c)
}
