package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OptionModel is one answer choice of a question.
// (question, label) is unique: no duplicate labels per question.
type OptionModel struct {
	OptionID         string `gorm:"column:option_id;primaryKey;type:uuid"`
	OptionQuestionID string `gorm:"column:option_question_id;type:uuid;not null;uniqueIndex:uq_option_label_per_question"`
	OptionLabel      string `gorm:"column:option_label;type:varchar(128);not null;uniqueIndex:uq_option_label_per_question"`
}

func (OptionModel) TableName() string {
	return "options"
}

func (o *OptionModel) BeforeCreate(tx *gorm.DB) error {
	if o.OptionID == "" {
		o.OptionID = uuid.NewString()
	}
	return nil
}
