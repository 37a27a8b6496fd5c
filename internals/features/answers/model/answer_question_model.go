package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	QuestionnaireModel "kuesioner_backend/internals/features/questionnaires/model"
)

// AnswerQuestionModel is one response set's answer placeholder for one
// question ("slot"). question_type is denormalized from the question at
// slot-creation time and never changes afterwards.
// (answer_questionnaire, question) is unique: exactly one slot per question.
type AnswerQuestionModel struct {
	AnswerQuestionID                    string    `gorm:"column:answer_question_id;primaryKey;type:uuid"`
	AnswerQuestionAnswerQuestionnaireID string    `gorm:"column:answer_question_answer_questionnaire_id;type:uuid;not null;uniqueIndex:uq_slot_per_question"`
	AnswerQuestionQuestionID            string    `gorm:"column:answer_question_question_id;type:uuid;not null;uniqueIndex:uq_slot_per_question"`
	AnswerQuestionText                  *string   `gorm:"column:answer_question_text;type:varchar(256)"` // only meaningful for text questions
	AnswerQuestionType                  int       `gorm:"column:answer_question_type;not null"`
	AnswerQuestionCreatedAt             time.Time `gorm:"column:answer_question_created_at;autoCreateTime"`

	// Relations
	Question      *QuestionnaireModel.QuestionModel `gorm:"foreignKey:AnswerQuestionQuestionID;references:QuestionID;constraint:OnDelete:CASCADE"`
	AnswerOptions []AnswerOptionModel               `gorm:"foreignKey:AnswerOptionAnswerQuestionID;references:AnswerQuestionID;constraint:OnDelete:CASCADE"`
}

func (AnswerQuestionModel) TableName() string {
	return "answer_questions"
}

func (a *AnswerQuestionModel) BeforeCreate(tx *gorm.DB) error {
	if a.AnswerQuestionID == "" {
		a.AnswerQuestionID = uuid.NewString()
	}
	return nil
}
