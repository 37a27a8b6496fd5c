package dto

import (
	"time"

	"kuesioner_backend/internals/features/answers/model"
)

// =============================
// 📤 Response DTOs
// =============================

// Shallow shape (list + detail).
type AnswerQuestionnaireDTO struct {
	AnswerQuestionnaireID string    `json:"answer_questionnaire_id"`
	QuestionnaireID       string    `json:"questionnaire_id"`
	UserID                string    `json:"user_id"`
	CreatedAt             time.Time `json:"created_at"`
}

// Expanded shape: slots included, each slot in its type-specific shape.
type AnswerQuestionnaireExpandedDTO struct {
	AnswerQuestionnaireID string        `json:"answer_questionnaire_id"`
	QuestionnaireID       string        `json:"questionnaire_id"`
	UserID                string        `json:"user_id"`
	CreatedAt             time.Time     `json:"created_at"`
	AnswerQuestions       []interface{} `json:"answer_questions"`
}

// =============================
// 📥 Request DTO
// =============================
type CreateAnswerQuestionnaireRequest struct {
	QuestionnaireID string `json:"questionnaire_id" validate:"required,uuid"`
}

// =============================
// 🔁 Converters
// =============================
func ToAnswerQuestionnaireDTO(m model.AnswerQuestionnaireModel) AnswerQuestionnaireDTO {
	return AnswerQuestionnaireDTO{
		AnswerQuestionnaireID: m.AnswerQuestionnaireID,
		QuestionnaireID:       m.AnswerQuestionnaireQuestionnaireID,
		UserID:                m.AnswerQuestionnaireUserID,
		CreatedAt:             m.AnswerQuestionnaireCreatedAt,
	}
}

func ToAnswerQuestionnaireExpandedDTO(m model.AnswerQuestionnaireModel) AnswerQuestionnaireExpandedDTO {
	slots := make([]interface{}, 0, len(m.AnswerQuestions))
	for _, aq := range m.AnswerQuestions {
		slots = append(slots, ToAnswerQuestionNestedDTO(aq))
	}
	return AnswerQuestionnaireExpandedDTO{
		AnswerQuestionnaireID: m.AnswerQuestionnaireID,
		QuestionnaireID:       m.AnswerQuestionnaireQuestionnaireID,
		UserID:                m.AnswerQuestionnaireUserID,
		CreatedAt:             m.AnswerQuestionnaireCreatedAt,
		AnswerQuestions:       slots,
	}
}
