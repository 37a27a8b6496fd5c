package dto

import (
	"kuesioner_backend/internals/features/questionnaires/model"
)

// =============================
// 📤 Response DTOs
// =============================
type OptionDTO struct {
	OptionID   string `json:"option_id"`
	QuestionID string `json:"question_id"`
	Option     string `json:"option"`
}

// Nested shape: parent omitted.
type OptionNestedDTO struct {
	OptionID string `json:"option_id"`
	Option   string `json:"option"`
}

// =============================
// 📥 Request DTOs
// =============================
type CreateOptionRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid"`
	Option     string `json:"option" validate:"required,max=128"`
}

type UpdateOptionRequest struct {
	Option string `json:"option" validate:"required,max=128"`
}

// =============================
// 🔁 Converters
// =============================
func ToOptionDTO(m model.OptionModel) OptionDTO {
	return OptionDTO{
		OptionID:   m.OptionID,
		QuestionID: m.OptionQuestionID,
		Option:     m.OptionLabel,
	}
}

func ToOptionNestedDTO(m model.OptionModel) OptionNestedDTO {
	return OptionNestedDTO{
		OptionID: m.OptionID,
		Option:   m.OptionLabel,
	}
}
