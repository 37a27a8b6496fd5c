package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	QuestionnaireModel "kuesioner_backend/internals/features/questionnaires/model"
	UserModel "kuesioner_backend/internals/features/users/model"
)

// AnswerQuestionnaireModel is one user's attempt at a questionnaire
// ("response set"). Its slots are bulk-created when the attempt starts.
type AnswerQuestionnaireModel struct {
	AnswerQuestionnaireID              string    `gorm:"column:answer_questionnaire_id;primaryKey;type:uuid"`
	AnswerQuestionnaireQuestionnaireID string    `gorm:"column:answer_questionnaire_questionnaire_id;type:uuid;not null;index"`
	AnswerQuestionnaireUserID          string    `gorm:"column:answer_questionnaire_user_id;type:uuid;not null;index"` // immutable after creation
	AnswerQuestionnaireCreatedAt       time.Time `gorm:"column:answer_questionnaire_created_at;autoCreateTime"`

	// Relations
	Questionnaire   *QuestionnaireModel.QuestionnaireModel `gorm:"foreignKey:AnswerQuestionnaireQuestionnaireID;references:QuestionnaireID;constraint:OnDelete:CASCADE"`
	User            *UserModel.UserModel                   `gorm:"foreignKey:AnswerQuestionnaireUserID;references:UserID;constraint:OnDelete:CASCADE"`
	AnswerQuestions []AnswerQuestionModel                  `gorm:"foreignKey:AnswerQuestionAnswerQuestionnaireID;references:AnswerQuestionnaireID;constraint:OnDelete:CASCADE"`
}

func (AnswerQuestionnaireModel) TableName() string {
	return "answer_questionnaires"
}

func (a *AnswerQuestionnaireModel) BeforeCreate(tx *gorm.DB) error {
	if a.AnswerQuestionnaireID == "" {
		a.AnswerQuestionnaireID = uuid.NewString()
	}
	return nil
}
