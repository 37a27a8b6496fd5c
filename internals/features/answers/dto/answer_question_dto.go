package dto

import (
	"kuesioner_backend/internals/features/answers/model"
	QuestionnaireModel "kuesioner_backend/internals/features/questionnaires/model"
)

// =============================
// 📤 Response DTOs — dual shape per question type
// =============================

// Text-shaped slot (question_type == 0).
type AnswerQuestionTextDTO struct {
	AnswerQuestionID      string  `json:"answer_question_id"`
	AnswerQuestionnaireID string  `json:"answer_questionnaire_id,omitempty"`
	QuestionID            string  `json:"question_id"`
	QuestionType          int     `json:"question_type"`
	Text                  *string `json:"text"`
}

// Choice-shaped slot (question_type == 1 or 2).
type AnswerQuestionChoiceDTO struct {
	AnswerQuestionID      string                  `json:"answer_question_id"`
	AnswerQuestionnaireID string                  `json:"answer_questionnaire_id,omitempty"`
	QuestionID            string                  `json:"question_id"`
	QuestionType          int                     `json:"question_type"`
	AnswerOptions         []AnswerOptionNestedDTO `json:"answer_options"`
}

// =============================
// 📥 Request DTOs
// =============================

// UpdateAnswerQuestionRequest carries either a text update (text slots) or a
// replacement selection set (choice slots) — never both.
type UpdateAnswerQuestionRequest struct {
	Text      *string   `json:"text,omitempty" validate:"omitempty,max=256"`
	OptionIDs *[]string `json:"option_ids,omitempty" validate:"omitempty,dive,uuid"`
}

// LegacyAnswerRequest is the single-shot submission payload posted against a
// response set: the slot for the question is replaced in full.
type LegacyAnswerRequest struct {
	QuestionID    string            `json:"question" validate:"required,uuid"`
	Text          *string           `json:"text,omitempty" validate:"omitempty,max=256"`
	AnswerOptions []LegacyOptionRef `json:"answer_options" validate:"omitempty,dive"`
}

type LegacyOptionRef struct {
	OptionID string `json:"option" validate:"required,uuid"`
}

// =============================
// 🔁 Converters
// =============================

// ToAnswerQuestionDTO picks the narrow slot shape by denormalized type,
// with the parent reference included (detail endpoints).
func ToAnswerQuestionDTO(m model.AnswerQuestionModel) interface{} {
	return toAnswerQuestionDTO(m, true)
}

// ToAnswerQuestionNestedDTO is the same shape with the parent omitted
// (nested under an expanded response set).
func ToAnswerQuestionNestedDTO(m model.AnswerQuestionModel) interface{} {
	return toAnswerQuestionDTO(m, false)
}

func toAnswerQuestionDTO(m model.AnswerQuestionModel, withParent bool) interface{} {
	parent := ""
	if withParent {
		parent = m.AnswerQuestionAnswerQuestionnaireID
	}

	if m.AnswerQuestionType == QuestionnaireModel.QuestionTypeText {
		return AnswerQuestionTextDTO{
			AnswerQuestionID:      m.AnswerQuestionID,
			AnswerQuestionnaireID: parent,
			QuestionID:            m.AnswerQuestionQuestionID,
			QuestionType:          m.AnswerQuestionType,
			Text:                  m.AnswerQuestionText,
		}
	}

	options := make([]AnswerOptionNestedDTO, 0, len(m.AnswerOptions))
	for _, ao := range m.AnswerOptions {
		options = append(options, ToAnswerOptionNestedDTO(ao))
	}
	return AnswerQuestionChoiceDTO{
		AnswerQuestionID:      m.AnswerQuestionID,
		AnswerQuestionnaireID: parent,
		QuestionID:            m.AnswerQuestionQuestionID,
		QuestionType:          m.AnswerQuestionType,
		AnswerOptions:         options,
	}
}
