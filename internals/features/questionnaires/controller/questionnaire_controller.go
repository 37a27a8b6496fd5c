package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuesioner_backend/internals/features/questionnaires/dto"
	"kuesioner_backend/internals/features/questionnaires/model"
	helper "kuesioner_backend/internals/helpers"
)

var validate = validator.New()

// Sortable columns for questionnaire listing (whitelist).
var questionnaireSortColumns = map[string]string{
	"date_begin": "questionnaire_date_begin",
	"date_end":   "questionnaire_date_end",
}

type QuestionnaireController struct {
	DB *gorm.DB
}

func NewQuestionnaireController(db *gorm.DB) *QuestionnaireController {
	return &QuestionnaireController{DB: db}
}

// =============================
// ➕ Create Questionnaire (admin)
// =============================
func (ctrl *QuestionnaireController) CreateQuestionnaire(c *fiber.Ctx) error {
	var req dto.CreateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	dateEnd, err := dto.ParseDate(req.DateEnd)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date_end must be YYYY-MM-DD")
	}

	questionnaire := model.QuestionnaireModel{
		QuestionnaireName:        req.Name,
		QuestionnaireDateEnd:     dateEnd,
		QuestionnaireDescription: req.Description,
	}
	if err := ctrl.DB.Create(&questionnaire).Error; err != nil {
		return helper.WriteDBError(c, err, "Failed to create questionnaire")
	}

	return helper.JsonCreated(c, dto.ToQuestionnaireDTO(questionnaire))
}

// =============================
// 📄 List Questionnaires (paginated, filter name, ?active=true)
// =============================
func (ctrl *QuestionnaireController) GetAllQuestionnaires(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	query := ctrl.DB.Model(&model.QuestionnaireModel{})

	if name := c.Query("name"); name != "" {
		query = query.Where("LOWER(questionnaire_name) LIKE LOWER(?)", "%"+name+"%")
	}

	// active = date_begin <= today <= date_end
	if c.QueryBool("active") {
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		query = query.Where("questionnaire_date_begin <= ? AND questionnaire_date_end >= ?", today, today)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count questionnaires")
	}

	order := helper.SafeOrderClause(questionnaireSortColumns, c.Query("sort_by"), c.Query("order"), "date_begin")

	var questionnaires []model.QuestionnaireModel
	if err := query.Order(order).Limit(paging.Limit).Offset(paging.Offset).Find(&questionnaires).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve questionnaires")
	}

	response := make([]dto.QuestionnaireDTO, 0, len(questionnaires))
	for _, q := range questionnaires {
		response = append(response, dto.ToQuestionnaireDTO(q))
	}

	return helper.JsonList(c, response, helper.BuildPagination(total, paging))
}

// =============================
// 🔍 Get Questionnaire by ID (shallow)
// =============================
func (ctrl *QuestionnaireController) GetQuestionnaireByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var questionnaire model.QuestionnaireModel
	if err := ctrl.DB.First(&questionnaire, "questionnaire_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Questionnaire not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve questionnaire")
	}

	return helper.JsonOK(c, dto.ToQuestionnaireDTO(questionnaire))
}

// =============================
// 🔍 Expand Questionnaire (questions + options)
// =============================
func (ctrl *QuestionnaireController) ExpandQuestionnaire(c *fiber.Ctx) error {
	id := c.Params("id")

	var questionnaire model.QuestionnaireModel
	if err := ctrl.DB.Preload("Questions.Options").First(&questionnaire, "questionnaire_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Questionnaire not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve questionnaire")
	}

	return helper.JsonOK(c, dto.ToQuestionnaireExpandedDTO(questionnaire))
}

// =============================
// ✏️ Update Questionnaire (admin, date_begin immutable)
// =============================
func (ctrl *QuestionnaireController) UpdateQuestionnaire(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var questionnaire model.QuestionnaireModel
	if err := ctrl.DB.First(&questionnaire, "questionnaire_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Questionnaire not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve questionnaire")
	}

	if req.Name != nil {
		questionnaire.QuestionnaireName = *req.Name
	}
	if req.DateEnd != nil {
		dateEnd, err := dto.ParseDate(*req.DateEnd)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date_end must be YYYY-MM-DD")
		}
		questionnaire.QuestionnaireDateEnd = dateEnd
	}
	if req.Description != nil {
		questionnaire.QuestionnaireDescription = req.Description
	}

	if err := ctrl.DB.Save(&questionnaire).Error; err != nil {
		return helper.WriteDBError(c, err, "Failed to update questionnaire")
	}

	return helper.JsonOK(c, dto.ToQuestionnaireDTO(questionnaire))
}

// =============================
// ❌ Delete Questionnaire (admin, cascades to all response data)
// =============================
func (ctrl *QuestionnaireController) DeleteQuestionnaire(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.QuestionnaireModel{}, "questionnaire_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete questionnaire")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Questionnaire not found")
	}

	return helper.JsonDeleted(c)
}
