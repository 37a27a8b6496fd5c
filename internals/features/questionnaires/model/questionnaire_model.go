package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question types
const (
	QuestionTypeText         = 0
	QuestionTypeChoices      = 1
	QuestionTypeMultiChoices = 2
)

func IsValidQuestionType(t int) bool {
	return t == QuestionTypeText || t == QuestionTypeChoices || t == QuestionTypeMultiChoices
}

type QuestionnaireModel struct {
	QuestionnaireID          string    `gorm:"column:questionnaire_id;primaryKey;type:uuid"`
	QuestionnaireName        string    `gorm:"column:questionnaire_name;type:varchar(128);not null"`
	QuestionnaireDateBegin   time.Time `gorm:"column:questionnaire_date_begin;type:date;not null"` // set at creation, immutable
	QuestionnaireDateEnd     time.Time `gorm:"column:questionnaire_date_end;type:date;not null"`
	QuestionnaireDescription *string   `gorm:"column:questionnaire_description;type:text"`

	Questions []QuestionModel `gorm:"foreignKey:QuestionQuestionnaireID;references:QuestionnaireID;constraint:OnDelete:CASCADE"`
}

func (QuestionnaireModel) TableName() string {
	return "questionnaires"
}

func (q *QuestionnaireModel) BeforeCreate(tx *gorm.DB) error {
	if q.QuestionnaireID == "" {
		q.QuestionnaireID = uuid.NewString()
	}
	if q.QuestionnaireDateBegin.IsZero() {
		now := time.Now().UTC()
		q.QuestionnaireDateBegin = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return nil
}
