package dto

import (
	"kuesioner_backend/internals/features/answers/model"
)

// =============================
// 📤 Response DTOs
// =============================
type AnswerOptionDTO struct {
	AnswerOptionID   string `json:"answer_option_id"`
	AnswerQuestionID string `json:"answer_question_id"`
	OptionID         string `json:"option_id"`
}

// Nested shape: parent omitted.
type AnswerOptionNestedDTO struct {
	AnswerOptionID string `json:"answer_option_id"`
	OptionID       string `json:"option_id"`
}

// =============================
// 📥 Request DTO
// =============================
type CreateAnswerOptionRequest struct {
	AnswerQuestionID string `json:"answer_question_id" validate:"required,uuid"`
	OptionID         string `json:"option_id" validate:"required,uuid"`
}

// =============================
// 🔁 Converters
// =============================
func ToAnswerOptionDTO(m model.AnswerOptionModel) AnswerOptionDTO {
	return AnswerOptionDTO{
		AnswerOptionID:   m.AnswerOptionID,
		AnswerQuestionID: m.AnswerOptionAnswerQuestionID,
		OptionID:         m.AnswerOptionOptionID,
	}
}

func ToAnswerOptionNestedDTO(m model.AnswerOptionModel) AnswerOptionNestedDTO {
	return AnswerOptionNestedDTO{
		AnswerOptionID: m.AnswerOptionID,
		OptionID:       m.AnswerOptionOptionID,
	}
}
