package database

import (
	"log"

	"gorm.io/gorm"

	AnswerModel "kuesioner_backend/internals/features/answers/model"
	QuestionnaireModel "kuesioner_backend/internals/features/questionnaires/model"
	UserModel "kuesioner_backend/internals/features/users/model"
)

// Migrate creates/updates the schema, parents before children so the
// cascade foreign keys resolve.
func Migrate(db *gorm.DB) error {
	log.Println("[INFO] Running migrations...")
	return db.AutoMigrate(
		&UserModel.UserModel{},
		&QuestionnaireModel.QuestionnaireModel{},
		&QuestionnaireModel.QuestionModel{},
		&QuestionnaireModel.OptionModel{},
		&AnswerModel.AnswerQuestionnaireModel{},
		&AnswerModel.AnswerQuestionModel{},
		&AnswerModel.AnswerOptionModel{},
	)
}
