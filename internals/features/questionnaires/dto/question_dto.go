package dto

import (
	"kuesioner_backend/internals/features/questionnaires/model"
)

// =============================
// 📤 Response DTOs
// =============================

// Shallow shape with the parent reference.
type QuestionDTO struct {
	QuestionID      string `json:"question_id"`
	QuestionnaireID string `json:"questionnaire_id"`
	Name            string `json:"name"`
	QuestionType    int    `json:"question_type"` // 0=text, 1=choices, 2=multi choices
}

// Nested shape: parent omitted, options included.
type QuestionExpandedDTO struct {
	QuestionID   string            `json:"question_id"`
	Name         string            `json:"name"`
	QuestionType int               `json:"question_type"`
	Options      []OptionNestedDTO `json:"options"`
}

// =============================
// 📥 Request DTOs
// =============================
type CreateQuestionRequest struct {
	QuestionnaireID string `json:"questionnaire_id" validate:"required,uuid"`
	Name            string `json:"name" validate:"required,max=512"`
	QuestionType    *int   `json:"question_type" validate:"required,oneof=0 1 2"`
}

type UpdateQuestionRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=512"`
	QuestionType *int    `json:"question_type,omitempty" validate:"omitempty,oneof=0 1 2"`
}

// =============================
// 🔁 Converters
// =============================
func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:      m.QuestionID,
		QuestionnaireID: m.QuestionQuestionnaireID,
		Name:            m.QuestionName,
		QuestionType:    m.QuestionType,
	}
}

func ToQuestionExpandedDTO(m model.QuestionModel) QuestionExpandedDTO {
	options := make([]OptionNestedDTO, 0, len(m.Options))
	for _, o := range m.Options {
		options = append(options, ToOptionNestedDTO(o))
	}
	return QuestionExpandedDTO{
		QuestionID:   m.QuestionID,
		Name:         m.QuestionName,
		QuestionType: m.QuestionType,
		Options:      options,
	}
}
