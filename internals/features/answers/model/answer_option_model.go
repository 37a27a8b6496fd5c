package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	QuestionnaireModel "kuesioner_backend/internals/features/questionnaires/model"
)

// AnswerOptionModel records a chosen option against a slot ("selection").
// (answer_question, option) is unique, and the referenced option must belong
// to the same question as the slot (enforced by the answers service).
type AnswerOptionModel struct {
	AnswerOptionID               string `gorm:"column:answer_option_id;primaryKey;type:uuid"`
	AnswerOptionAnswerQuestionID string `gorm:"column:answer_option_answer_question_id;type:uuid;not null;uniqueIndex:uq_selection_per_slot"`
	AnswerOptionOptionID         string `gorm:"column:answer_option_option_id;type:uuid;not null;uniqueIndex:uq_selection_per_slot"`

	// Relation
	Option *QuestionnaireModel.OptionModel `gorm:"foreignKey:AnswerOptionOptionID;references:OptionID;constraint:OnDelete:CASCADE"`
}

func (AnswerOptionModel) TableName() string {
	return "answer_options"
}

func (a *AnswerOptionModel) BeforeCreate(tx *gorm.DB) error {
	if a.AnswerOptionID == "" {
		a.AnswerOptionID = uuid.NewString()
	}
	return nil
}
