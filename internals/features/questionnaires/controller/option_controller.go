package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/questionnaires/dto"
	"kuesioner_backend/internals/features/questionnaires/model"
	helper "kuesioner_backend/internals/helpers"
)

type OptionController struct {
	DB *gorm.DB
}

func NewOptionController(db *gorm.DB) *OptionController {
	return &OptionController{DB: db}
}

// =============================
// ➕ Create Option (admin, only for non-text questions)
// =============================
func (ctrl *OptionController) CreateOption(c *fiber.Ctx) error {
	var req dto.CreateOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", req.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve question")
	}

	// text questions carry no options
	if question.QuestionType == model.QuestionTypeText {
		return fiber.NewError(fiber.StatusBadRequest, "options not allowed for text questions")
	}

	option := model.OptionModel{
		OptionQuestionID: req.QuestionID,
		OptionLabel:      req.Option,
	}
	if err := ctrl.DB.Create(&option).Error; err != nil {
		return helper.WriteDBError(c, err, "Failed to create option")
	}

	return helper.JsonCreated(c, dto.ToOptionDTO(option))
}

// =============================
// 📄 List Options (filter by question_id)
// =============================
func (ctrl *OptionController) GetAllOptions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	query := ctrl.DB.Model(&model.OptionModel{})
	if questionID := c.Query("question_id"); questionID != "" {
		query = query.Where("option_question_id = ?", questionID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count options")
	}

	var options []model.OptionModel
	if err := query.Limit(paging.Limit).Offset(paging.Offset).Find(&options).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve options")
	}

	response := make([]dto.OptionDTO, 0, len(options))
	for _, o := range options {
		response = append(response, dto.ToOptionDTO(o))
	}

	return helper.JsonList(c, response, helper.BuildPagination(total, paging))
}

// =============================
// 🔍 Get Option by ID
// =============================
func (ctrl *OptionController) GetOptionByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var option model.OptionModel
	if err := ctrl.DB.First(&option, "option_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Option not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve option")
	}

	return helper.JsonOK(c, dto.ToOptionDTO(option))
}

// =============================
// ✏️ Update Option (admin, label only)
// =============================
func (ctrl *OptionController) UpdateOption(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var option model.OptionModel
	if err := ctrl.DB.First(&option, "option_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Option not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve option")
	}

	option.OptionLabel = req.Option
	if err := ctrl.DB.Save(&option).Error; err != nil {
		return helper.WriteDBError(c, err, "Failed to update option")
	}

	return helper.JsonOK(c, dto.ToOptionDTO(option))
}

// =============================
// ❌ Delete Option (admin)
// =============================
func (ctrl *OptionController) DeleteOption(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.OptionModel{}, "option_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete option")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Option not found")
	}

	return helper.JsonDeleted(c)
}
