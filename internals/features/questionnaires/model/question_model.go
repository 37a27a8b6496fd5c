package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionModel struct {
	QuestionID              string `gorm:"column:question_id;primaryKey;type:uuid"`
	QuestionQuestionnaireID string `gorm:"column:question_questionnaire_id;type:uuid;not null;index"`
	QuestionName            string `gorm:"column:question_name;type:varchar(512);not null"`
	QuestionType            int    `gorm:"column:question_type;not null"` // 0=text, 1=choices, 2=multi choices

	Options []OptionModel `gorm:"foreignKey:OptionQuestionID;references:QuestionID;constraint:OnDelete:CASCADE"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

func (q *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if q.QuestionID == "" {
		q.QuestionID = uuid.NewString()
	}
	return nil
}
