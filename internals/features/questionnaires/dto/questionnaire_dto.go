package dto

import (
	"time"

	"kuesioner_backend/internals/features/questionnaires/model"
)

// =============================
// 📤 Response DTOs
// =============================

// Shallow shape: parent fields only (list + detail endpoints).
type QuestionnaireDTO struct {
	QuestionnaireID string  `json:"questionnaire_id"`
	Name            string  `json:"name"`
	DateBegin       string  `json:"date_begin"` // YYYY-MM-DD
	DateEnd         string  `json:"date_end"`   // YYYY-MM-DD
	Description     *string `json:"description,omitempty"`
}

// Expanded shape: includes questions with their options (expand endpoint).
type QuestionnaireExpandedDTO struct {
	QuestionnaireID string                `json:"questionnaire_id"`
	Name            string                `json:"name"`
	DateBegin       string                `json:"date_begin"`
	DateEnd         string                `json:"date_end"`
	Description     *string               `json:"description,omitempty"`
	Questions       []QuestionExpandedDTO `json:"questions"`
}

// =============================
// 📥 Request DTOs
// =============================
type CreateQuestionnaireRequest struct {
	Name        string  `json:"name" validate:"required,max=128"`
	DateEnd     string  `json:"date_end" validate:"required,datetime=2006-01-02"`
	Description *string `json:"description,omitempty"`
}

type UpdateQuestionnaireRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=128"`
	DateEnd     *string `json:"date_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description,omitempty"`
}

// =============================
// 🔁 Converters
// =============================
const dateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func ToQuestionnaireDTO(m model.QuestionnaireModel) QuestionnaireDTO {
	return QuestionnaireDTO{
		QuestionnaireID: m.QuestionnaireID,
		Name:            m.QuestionnaireName,
		DateBegin:       m.QuestionnaireDateBegin.Format(dateLayout),
		DateEnd:         m.QuestionnaireDateEnd.Format(dateLayout),
		Description:     m.QuestionnaireDescription,
	}
}

func ToQuestionnaireExpandedDTO(m model.QuestionnaireModel) QuestionnaireExpandedDTO {
	questions := make([]QuestionExpandedDTO, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, ToQuestionExpandedDTO(q))
	}
	return QuestionnaireExpandedDTO{
		QuestionnaireID: m.QuestionnaireID,
		Name:            m.QuestionnaireName,
		DateBegin:       m.QuestionnaireDateBegin.Format(dateLayout),
		DateEnd:         m.QuestionnaireDateEnd.Format(dateLayout),
		Description:     m.QuestionnaireDescription,
		Questions:       questions,
	}
}
