package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "kuesioner_backend/internals/databases"
	"kuesioner_backend/internals/features/answers/model"
	QuestionnaireModel "kuesioner_backend/internals/features/questionnaires/model"
	UserModel "kuesioner_backend/internals/features/users/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every session on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// fixture: questionnaire "Satisfaction" with a single-choice "Rating"
// (Good/Bad), a text "Comment", and a multi-choice "Hobbies" (Reading/Sport).
type fixture struct {
	db  *gorm.DB
	svc *AnswerService

	user  Identity
	other Identity
	admin Identity

	questionnaire QuestionnaireModel.QuestionnaireModel
	rating        QuestionnaireModel.QuestionModel
	comment       QuestionnaireModel.QuestionModel
	hobbies       QuestionnaireModel.QuestionModel
	good, bad     QuestionnaireModel.OptionModel
	reading       QuestionnaireModel.OptionModel
	sport         QuestionnaireModel.OptionModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{db: db, svc: NewAnswerService(db)}

	users := []UserModel.UserModel{
		{UserName: "alice", UserPassword: "x", UserRole: "user"},
		{UserName: "bob", UserPassword: "x", UserRole: "user"},
		{UserName: "root", UserPassword: "x", UserRole: "admin"},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}
	f.user = Identity{UserID: users[0].UserID}
	f.other = Identity{UserID: users[1].UserID}
	f.admin = Identity{UserID: users[2].UserID, Admin: true}

	f.questionnaire = QuestionnaireModel.QuestionnaireModel{
		QuestionnaireName:    "Satisfaction",
		QuestionnaireDateEnd: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, db.Create(&f.questionnaire).Error)

	f.rating = QuestionnaireModel.QuestionModel{
		QuestionQuestionnaireID: f.questionnaire.QuestionnaireID,
		QuestionName:            "Rating",
		QuestionType:            QuestionnaireModel.QuestionTypeChoices,
	}
	f.comment = QuestionnaireModel.QuestionModel{
		QuestionQuestionnaireID: f.questionnaire.QuestionnaireID,
		QuestionName:            "Comment",
		QuestionType:            QuestionnaireModel.QuestionTypeText,
	}
	f.hobbies = QuestionnaireModel.QuestionModel{
		QuestionQuestionnaireID: f.questionnaire.QuestionnaireID,
		QuestionName:            "Hobbies",
		QuestionType:            QuestionnaireModel.QuestionTypeMultiChoices,
	}
	for _, q := range []*QuestionnaireModel.QuestionModel{&f.rating, &f.comment, &f.hobbies} {
		require.NoError(t, db.Create(q).Error)
	}

	f.good = QuestionnaireModel.OptionModel{OptionQuestionID: f.rating.QuestionID, OptionLabel: "Good"}
	f.bad = QuestionnaireModel.OptionModel{OptionQuestionID: f.rating.QuestionID, OptionLabel: "Bad"}
	f.reading = QuestionnaireModel.OptionModel{OptionQuestionID: f.hobbies.QuestionID, OptionLabel: "Reading"}
	f.sport = QuestionnaireModel.OptionModel{OptionQuestionID: f.hobbies.QuestionID, OptionLabel: "Sport"}
	for _, o := range []*QuestionnaireModel.OptionModel{&f.good, &f.bad, &f.reading, &f.sport} {
		require.NoError(t, db.Create(o).Error)
	}

	return f
}

func (f *fixture) slotFor(t *testing.T, rs *model.AnswerQuestionnaireModel, questionID string) model.AnswerQuestionModel {
	t.Helper()
	for _, slot := range rs.AnswerQuestions {
		if slot.AnswerQuestionQuestionID == questionID {
			return slot
		}
	}
	t.Fatalf("no slot for question %s", questionID)
	return model.AnswerQuestionModel{}
}

/* ===============================
   BeginResponse
=================================*/

func TestBeginResponse(t *testing.T) {
	f := newFixture(t)

	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)

	assert.Equal(t, f.user.UserID, rs.AnswerQuestionnaireUserID)
	assert.Len(t, rs.AnswerQuestions, 3, "one slot per question")

	// each slot copies its question's type and starts with no selections
	ratingSlot := f.slotFor(t, rs, f.rating.QuestionID)
	assert.Equal(t, QuestionnaireModel.QuestionTypeChoices, ratingSlot.AnswerQuestionType)
	commentSlot := f.slotFor(t, rs, f.comment.QuestionID)
	assert.Equal(t, QuestionnaireModel.QuestionTypeText, commentSlot.AnswerQuestionType)

	var selections int64
	require.NoError(t, f.db.Model(&model.AnswerOptionModel{}).Count(&selections).Error)
	assert.Zero(t, selections)
}

func TestBeginResponseUnknownQuestionnaire(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.BeginResponse("11111111-1111-1111-1111-111111111111", f.user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBeginResponseSnapshotIsFixed(t *testing.T) {
	f := newFixture(t)

	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	require.Len(t, rs.AnswerQuestions, 3)

	// a question added after the attempt started gains no slot in it
	late := QuestionnaireModel.QuestionModel{
		QuestionQuestionnaireID: f.questionnaire.QuestionnaireID,
		QuestionName:            "Late addition",
		QuestionType:            QuestionnaireModel.QuestionTypeText,
	}
	require.NoError(t, f.db.Create(&late).Error)

	reloaded, err := f.svc.GetResponseSet(rs.AnswerQuestionnaireID, f.user, true)
	require.NoError(t, err)
	assert.Len(t, reloaded.AnswerQuestions, 3)

	// while a fresh attempt picks it up
	rs2, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	assert.Len(t, rs2.AnswerQuestions, 4)
}

func TestBeginResponseAllowsRepeatedAttempts(t *testing.T) {
	f := newFixture(t)

	rs1, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	rs2, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)

	assert.NotEqual(t, rs1.AnswerQuestionnaireID, rs2.AnswerQuestionnaireID)
}

/* ===============================
   Selections (rule 4.1.2)
=================================*/

func TestCreateSelectionSingleChoice(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.rating.QuestionID)

	// first selection passes
	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.good.OptionID, f.user)
	require.NoError(t, err)

	// second selection on a single-choice slot fails
	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.bad.OptionID, f.user)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "only one option allowed", ve.Message)
}

func TestCreateSelectionMultiChoice(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.hobbies.QuestionID)

	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.reading.OptionID, f.user)
	require.NoError(t, err)
	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.sport.OptionID, f.user)
	require.NoError(t, err)

	// the same option twice hits the uniqueness rule
	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.sport.OptionID, f.user)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCreateSelectionOnTextSlot(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.comment.QuestionID)

	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.good.OptionID, f.user)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "text question accepts no options", ve.Message)
}

func TestCreateSelectionForeignOption(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.rating.QuestionID)

	// an option of another question is rejected
	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.reading.OptionID, f.user)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "option does not belong to this question", ve.Message)
}

func TestCreateSelectionForeignResponseSet(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.rating.QuestionID)

	// someone else's response set reads as absent
	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.good.OptionID, f.other)
	assert.ErrorIs(t, err, ErrNotFound)

	// an administrator may write it
	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.good.OptionID, f.admin)
	assert.NoError(t, err)
}

/* ===============================
   Slot updates
=================================*/

func TestUpdateSlotText(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.comment.QuestionID)

	updated, err := f.svc.UpdateSlot(slot.AnswerQuestionID, f.user, SlotUpdate{Text: strPtr("Great service")})
	require.NoError(t, err)
	require.NotNil(t, updated.AnswerQuestionText)
	assert.Equal(t, "Great service", *updated.AnswerQuestionText)

	// option payload on a text slot is rejected
	_, err = f.svc.UpdateSlot(slot.AnswerQuestionID, f.user, SlotUpdate{OptionIDs: &[]string{f.good.OptionID}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "options not allowed for text question", ve.Message)
}

func TestUpdateSlotChoices(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.hobbies.QuestionID)

	// text payload on a choice slot is rejected
	_, err = f.svc.UpdateSlot(slot.AnswerQuestionID, f.user, SlotUpdate{Text: strPtr("nope")})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "text not allowed for non-text question", ve.Message)

	// replacement set
	updated, err := f.svc.UpdateSlot(slot.AnswerQuestionID, f.user,
		SlotUpdate{OptionIDs: &[]string{f.reading.OptionID, f.sport.OptionID}})
	require.NoError(t, err)
	assert.Len(t, updated.AnswerOptions, 2)

	// replacing again drops the previous selections
	updated, err = f.svc.UpdateSlot(slot.AnswerQuestionID, f.user,
		SlotUpdate{OptionIDs: &[]string{f.sport.OptionID}})
	require.NoError(t, err)
	require.Len(t, updated.AnswerOptions, 1)
	assert.Equal(t, f.sport.OptionID, updated.AnswerOptions[0].AnswerOptionOptionID)
}

func TestUpdateSlotSingleChoiceCardinality(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.rating.QuestionID)

	_, err = f.svc.UpdateSlot(slot.AnswerQuestionID, f.user,
		SlotUpdate{OptionIDs: &[]string{f.good.OptionID, f.bad.OptionID}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "only one option allowed", ve.Message)
}

func TestUpdateSlotForeignOptionRejected(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.rating.QuestionID)

	_, err = f.svc.UpdateSlot(slot.AnswerQuestionID, f.user,
		SlotUpdate{OptionIDs: &[]string{f.reading.OptionID}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "option does not belong to this question", ve.Message)
}

/* ===============================
   Legacy single-shot submission
=================================*/

func TestSubmitLegacyAnswerText(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)

	slot, err := f.svc.SubmitLegacyAnswer(rs.AnswerQuestionnaireID, f.user, LegacyAnswer{
		QuestionID: f.comment.QuestionID,
		Text:       strPtr("keep it up"),
	})
	require.NoError(t, err)
	require.NotNil(t, slot.AnswerQuestionText)
	assert.Equal(t, "keep it up", *slot.AnswerQuestionText)

	// still exactly one slot for the question
	var count int64
	require.NoError(t, f.db.Model(&model.AnswerQuestionModel{}).
		Where("answer_question_answer_questionnaire_id = ? AND answer_question_question_id = ?",
			rs.AnswerQuestionnaireID, f.comment.QuestionID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitLegacyAnswerValidation(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)

	var ve *ValidationError

	// text on a choice question
	_, err = f.svc.SubmitLegacyAnswer(rs.AnswerQuestionnaireID, f.user, LegacyAnswer{
		QuestionID: f.rating.QuestionID,
		Text:       strPtr("nice"),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "text not allowed for non-text question", ve.Message)

	// options on a text question
	_, err = f.svc.SubmitLegacyAnswer(rs.AnswerQuestionnaireID, f.user, LegacyAnswer{
		QuestionID: f.comment.QuestionID,
		OptionIDs:  []string{f.good.OptionID},
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "options not allowed for text question", ve.Message)

	// two options on a single-choice question
	_, err = f.svc.SubmitLegacyAnswer(rs.AnswerQuestionnaireID, f.user, LegacyAnswer{
		QuestionID: f.rating.QuestionID,
		OptionIDs:  []string{f.good.OptionID, f.bad.OptionID},
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "only one option allowed", ve.Message)
}

func TestSubmitLegacyAnswerDropsForeignOptions(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)

	// the foreign option is silently dropped, not rejected
	slot, err := f.svc.SubmitLegacyAnswer(rs.AnswerQuestionnaireID, f.user, LegacyAnswer{
		QuestionID: f.hobbies.QuestionID,
		OptionIDs:  []string{f.reading.OptionID, f.good.OptionID},
	})
	require.NoError(t, err)
	require.Len(t, slot.AnswerOptions, 1)
	assert.Equal(t, f.reading.OptionID, slot.AnswerOptions[0].AnswerOptionOptionID)
}

func TestSubmitLegacyAnswerReplacesSlot(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)

	first, err := f.svc.SubmitLegacyAnswer(rs.AnswerQuestionnaireID, f.user, LegacyAnswer{
		QuestionID: f.hobbies.QuestionID,
		OptionIDs:  []string{f.reading.OptionID, f.sport.OptionID},
	})
	require.NoError(t, err)
	require.Len(t, first.AnswerOptions, 2)

	second, err := f.svc.SubmitLegacyAnswer(rs.AnswerQuestionnaireID, f.user, LegacyAnswer{
		QuestionID: f.hobbies.QuestionID,
		OptionIDs:  []string{f.sport.OptionID},
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.AnswerQuestionID, second.AnswerQuestionID, "slot is recreated")
	require.Len(t, second.AnswerOptions, 1)

	// the old slot's selections are gone
	var orphans int64
	require.NoError(t, f.db.Model(&model.AnswerOptionModel{}).
		Where("answer_option_answer_question_id = ?", first.AnswerQuestionID).
		Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestSubmitLegacyAnswerOwnership(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)

	_, err = f.svc.SubmitLegacyAnswer(rs.AnswerQuestionnaireID, f.other, LegacyAnswer{
		QuestionID: f.comment.QuestionID,
		Text:       strPtr("intrusion"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

/* ===============================
   Access policy on reads/deletes
=================================*/

func TestResponseSetVisibility(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)

	// owner and admin can read; another user gets not-found
	_, err = f.svc.GetResponseSet(rs.AnswerQuestionnaireID, f.user, false)
	assert.NoError(t, err)
	_, err = f.svc.GetResponseSet(rs.AnswerQuestionnaireID, f.admin, true)
	assert.NoError(t, err)
	_, err = f.svc.GetResponseSet(rs.AnswerQuestionnaireID, f.other, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListResponseSetsScoping(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	_, err = f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.other)
	require.NoError(t, err)

	own, total, err := f.svc.ListResponseSets(f.user, ResponseSetFilter{}, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, own, 1)
	assert.Equal(t, f.user.UserID, own[0].AnswerQuestionnaireUserID)

	all, total, err := f.svc.ListResponseSets(f.admin, ResponseSetFilter{}, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)

	filtered, total, err := f.svc.ListResponseSets(f.admin, ResponseSetFilter{UserID: f.other.UserID}, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, filtered, 1)
	assert.Equal(t, f.other.UserID, filtered[0].AnswerQuestionnaireUserID)
}

func TestDeleteResponseSetCascades(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.hobbies.QuestionID)

	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.reading.OptionID, f.user)
	require.NoError(t, err)

	// another user cannot delete it
	err = f.svc.DeleteResponseSet(rs.AnswerQuestionnaireID, f.other)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.svc.DeleteResponseSet(rs.AnswerQuestionnaireID, f.user))

	var slots, selections int64
	require.NoError(t, f.db.Model(&model.AnswerQuestionModel{}).Count(&slots).Error)
	require.NoError(t, f.db.Model(&model.AnswerOptionModel{}).Count(&selections).Error)
	assert.Zero(t, slots)
	assert.Zero(t, selections)
}

func TestDeleteSelection(t *testing.T) {
	f := newFixture(t)
	rs, err := f.svc.BeginResponse(f.questionnaire.QuestionnaireID, f.user)
	require.NoError(t, err)
	slot := f.slotFor(t, rs, f.rating.QuestionID)

	selection, err := f.svc.CreateSelection(slot.AnswerQuestionID, f.good.OptionID, f.user)
	require.NoError(t, err)

	// selections of other users read as absent
	err = f.svc.DeleteSelection(selection.AnswerOptionID, f.other)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.svc.DeleteSelection(selection.AnswerOptionID, f.user))

	// deselect then re-select is allowed
	_, err = f.svc.CreateSelection(slot.AnswerQuestionID, f.bad.OptionID, f.user)
	assert.NoError(t, err)
}
