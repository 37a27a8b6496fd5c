package service

import (
	"errors"

	"gorm.io/gorm"

	"kuesioner_backend/internals/features/answers/model"
	QuestionnaireModel "kuesioner_backend/internals/features/questionnaires/model"
	helper "kuesioner_backend/internals/helpers"
)

// AnswerService orchestrates response sets and their slots: starting an
// attempt, recording selections, and the single-shot legacy submission.
// The acting identity is always passed explicitly; it is never read from
// ambient state.
type AnswerService struct {
	DB *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{DB: db}
}

// Identity is the acting identity for a service call.
type Identity struct {
	UserID string
	Admin  bool
}

// owns reports whether ident may touch a response set.
func (i Identity) owns(rs *model.AnswerQuestionnaireModel) bool {
	return i.Admin || rs.AnswerQuestionnaireUserID == i.UserID
}

/* ===============================
   Response sets
=================================*/

// BeginResponse starts one attempt at a questionnaire: it creates the
// response set and bulk-creates one empty slot per question that exists at
// this instant, copying the question type onto each slot. The whole step is
// one transaction — a failed slot insert rolls the response set back too.
func (s *AnswerService) BeginResponse(questionnaireID string, ident Identity) (*model.AnswerQuestionnaireModel, error) {
	var questionnaire QuestionnaireModel.QuestionnaireModel
	if err := s.DB.First(&questionnaire, "questionnaire_id = ?", questionnaireID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	responseSet := model.AnswerQuestionnaireModel{
		AnswerQuestionnaireQuestionnaireID: questionnaire.QuestionnaireID,
		AnswerQuestionnaireUserID:          ident.UserID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&responseSet).Error; err != nil {
			return err
		}

		// snapshot of the current question list: questions added later do
		// not retroactively gain slots in this attempt
		var questions []QuestionnaireModel.QuestionModel
		if err := tx.Where("question_questionnaire_id = ?", questionnaire.QuestionnaireID).
			Find(&questions).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}

		slots := make([]model.AnswerQuestionModel, 0, len(questions))
		for _, q := range questions {
			slots = append(slots, model.AnswerQuestionModel{
				AnswerQuestionAnswerQuestionnaireID: responseSet.AnswerQuestionnaireID,
				AnswerQuestionQuestionID:            q.QuestionID,
				AnswerQuestionType:                  q.QuestionType,
			})
		}
		return tx.Create(&slots).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("AnswerQuestions").
		First(&responseSet, "answer_questionnaire_id = ?", responseSet.AnswerQuestionnaireID).Error; err != nil {
		return nil, err
	}
	return &responseSet, nil
}

// GetResponseSet retrieves one response set, optionally expanded with its
// slots and their selections. Sets belonging to other users read as absent.
func (s *AnswerService) GetResponseSet(id string, ident Identity, expand bool) (*model.AnswerQuestionnaireModel, error) {
	query := s.DB
	if expand {
		query = query.Preload("AnswerQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_question_created_at")
		}).Preload("AnswerQuestions.AnswerOptions")
	}

	var responseSet model.AnswerQuestionnaireModel
	if err := query.First(&responseSet, "answer_questionnaire_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !ident.owns(&responseSet) {
		return nil, ErrNotFound
	}
	return &responseSet, nil
}

// ResponseSetFilter narrows response-set listings. The user filter only
// applies for administrators; everyone else is scoped to their own sets.
type ResponseSetFilter struct {
	QuestionnaireID string
	UserID          string
}

func (s *AnswerService) ListResponseSets(ident Identity, filter ResponseSetFilter, limit, offset int) ([]model.AnswerQuestionnaireModel, int64, error) {
	query := s.DB.Model(&model.AnswerQuestionnaireModel{})

	if ident.Admin {
		if filter.UserID != "" {
			query = query.Where("answer_questionnaire_user_id = ?", filter.UserID)
		}
	} else {
		query = query.Where("answer_questionnaire_user_id = ?", ident.UserID)
	}
	if filter.QuestionnaireID != "" {
		query = query.Where("answer_questionnaire_questionnaire_id = ?", filter.QuestionnaireID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var responseSets []model.AnswerQuestionnaireModel
	if err := query.Order("answer_questionnaire_created_at DESC").
		Limit(limit).Offset(offset).Find(&responseSets).Error; err != nil {
		return nil, 0, err
	}
	return responseSets, total, nil
}

// DeleteResponseSet removes a response set with its slots and selections,
// children before parents, in one transaction.
func (s *AnswerService) DeleteResponseSet(id string, ident Identity) error {
	responseSet, err := s.GetResponseSet(id, ident, false)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		slotIDs := tx.Model(&model.AnswerQuestionModel{}).
			Select("answer_question_id").
			Where("answer_question_answer_questionnaire_id = ?", responseSet.AnswerQuestionnaireID)

		if err := tx.Where("answer_option_answer_question_id IN (?)", slotIDs).
			Delete(&model.AnswerOptionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("answer_question_answer_questionnaire_id = ?", responseSet.AnswerQuestionnaireID).
			Delete(&model.AnswerQuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.AnswerQuestionnaireModel{}, "answer_questionnaire_id = ?", responseSet.AnswerQuestionnaireID).Error
	})
}

/* ===============================
   Slots
=================================*/

// GetSlot retrieves one slot with its selections, subject to ownership.
func (s *AnswerService) GetSlot(slotID string, ident Identity) (*model.AnswerQuestionModel, error) {
	var slot model.AnswerQuestionModel
	if err := s.DB.Preload("AnswerOptions").First(&slot, "answer_question_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.GetResponseSet(slot.AnswerQuestionAnswerQuestionnaireID, ident, false); err != nil {
		return nil, err
	}
	return &slot, nil
}

// ListSlots returns a response set's slots in creation order.
func (s *AnswerService) ListSlots(responseSetID string, ident Identity) ([]model.AnswerQuestionModel, error) {
	if _, err := s.GetResponseSet(responseSetID, ident, false); err != nil {
		return nil, err
	}

	var slots []model.AnswerQuestionModel
	if err := s.DB.Preload("AnswerOptions").
		Where("answer_question_answer_questionnaire_id = ?", responseSetID).
		Order("answer_question_created_at").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// SlotUpdate carries either a text update (text slots) or a replacement
// selection set (choice slots).
type SlotUpdate struct {
	Text      *string
	OptionIDs *[]string
}

// UpdateSlot applies an update to one slot, dispatching by the denormalized
// question type: text slots accept only text, choice slots accept only a
// selection set. The selection set replaces the previous one in a single
// transaction.
func (s *AnswerService) UpdateSlot(slotID string, ident Identity, upd SlotUpdate) (*model.AnswerQuestionModel, error) {
	slot, err := s.GetSlot(slotID, ident)
	if err != nil {
		return nil, err
	}

	if slot.AnswerQuestionType == QuestionnaireModel.QuestionTypeText {
		if upd.OptionIDs != nil {
			return nil, invalid("option_ids", "options not allowed for text question")
		}
		if upd.Text == nil {
			return nil, invalid("text", "text is required for a text question")
		}
		if err := s.DB.Model(slot).Update("answer_question_text", upd.Text).Error; err != nil {
			return nil, err
		}
	} else {
		if upd.Text != nil {
			return nil, invalid("text", "text not allowed for non-text question")
		}
		if upd.OptionIDs == nil {
			return nil, invalid("option_ids", "option_ids is required for a choice question")
		}

		optionIDs := dedupe(*upd.OptionIDs)
		if ve := validateSlotReplacement(slot.AnswerQuestionType, len(optionIDs)); ve != nil {
			return nil, ve
		}
		if len(optionIDs) > 0 {
			var count int64
			if err := s.DB.Model(&QuestionnaireModel.OptionModel{}).
				Where("option_question_id = ? AND option_id IN ?", slot.AnswerQuestionQuestionID, optionIDs).
				Count(&count).Error; err != nil {
				return nil, err
			}
			if int(count) != len(optionIDs) {
				return nil, invalid("option_ids", "option does not belong to this question")
			}
		}

		err := s.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("answer_option_answer_question_id = ?", slot.AnswerQuestionID).
				Delete(&model.AnswerOptionModel{}).Error; err != nil {
				return err
			}
			for _, optionID := range optionIDs {
				selection := model.AnswerOptionModel{
					AnswerOptionAnswerQuestionID: slot.AnswerQuestionID,
					AnswerOptionOptionID:         optionID,
				}
				if err := tx.Create(&selection).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return s.GetSlot(slotID, ident)
}

/* ===============================
   Selections
=================================*/

// CreateSelection records one chosen option against a slot after running the
// full selection rule set. Rule order mirrors the submission path: question
// type, then ownership, then option integrity, then cardinality.
func (s *AnswerService) CreateSelection(slotID, optionID string, ident Identity) (*model.AnswerOptionModel, error) {
	var slot model.AnswerQuestionModel
	if err := s.DB.First(&slot, "answer_question_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if slot.AnswerQuestionType == QuestionnaireModel.QuestionTypeText {
		return nil, invalid("answer_question", "text question accepts no options")
	}

	if _, err := s.GetResponseSet(slot.AnswerQuestionAnswerQuestionnaireID, ident, false); err != nil {
		return nil, err
	}

	// an unknown option and one from another question are the same violation
	var option QuestionnaireModel.OptionModel
	if err := s.DB.First(&option, "option_id = ?", optionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("option", "option does not belong to this question")
		}
		return nil, err
	}

	var existing int64
	if err := s.DB.Model(&model.AnswerOptionModel{}).
		Where("answer_option_answer_question_id = ?", slot.AnswerQuestionID).
		Count(&existing).Error; err != nil {
		return nil, err
	}

	if ve := validateSelection(slot.AnswerQuestionType, slot.AnswerQuestionQuestionID, option.OptionQuestionID, existing); ve != nil {
		return nil, ve
	}

	selection := model.AnswerOptionModel{
		AnswerOptionAnswerQuestionID: slot.AnswerQuestionID,
		AnswerOptionOptionID:         option.OptionID,
	}
	if err := s.DB.Create(&selection).Error; err != nil {
		// concurrent duplicate loses on the unique constraint
		if helper.IsDuplicateKey(err) {
			return nil, invalid("option", "option already selected for this slot")
		}
		return nil, err
	}
	return &selection, nil
}

// GetSelection retrieves one selection, subject to ownership of its chain.
func (s *AnswerService) GetSelection(id string, ident Identity) (*model.AnswerOptionModel, error) {
	var selection model.AnswerOptionModel
	if err := s.DB.First(&selection, "answer_option_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.GetSlot(selection.AnswerOptionAnswerQuestionID, ident); err != nil {
		return nil, err
	}
	return &selection, nil
}

// ListSelections returns the selections recorded against one slot.
func (s *AnswerService) ListSelections(slotID string, ident Identity) ([]model.AnswerOptionModel, error) {
	if _, err := s.GetSlot(slotID, ident); err != nil {
		return nil, err
	}

	var selections []model.AnswerOptionModel
	if err := s.DB.Where("answer_option_answer_question_id = ?", slotID).
		Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

// DeleteSelection deselects an option.
func (s *AnswerService) DeleteSelection(id string, ident Identity) error {
	selection, err := s.GetSelection(id, ident)
	if err != nil {
		return err
	}
	return s.DB.Delete(&model.AnswerOptionModel{}, "answer_option_id = ?", selection.AnswerOptionID).Error
}

/* ===============================
   Legacy single-shot submission
=================================*/

// LegacyAnswer is the combined payload of the single-endpoint answer path.
type LegacyAnswer struct {
	QuestionID string
	Text       *string
	OptionIDs  []string
}

// SubmitLegacyAnswer replaces a question's slot in full: the old slot and its
// selections are dropped and a fresh slot is created from the payload. The
// replacement runs in one transaction, so a mid-step failure cannot leave the
// question unanswered. Payload options that do not belong to the question are
// silently dropped, not rejected.
func (s *AnswerService) SubmitLegacyAnswer(responseSetID string, ident Identity, payload LegacyAnswer) (*model.AnswerQuestionModel, error) {
	responseSet, err := s.GetResponseSet(responseSetID, ident, false)
	if err != nil {
		return nil, err
	}

	var question QuestionnaireModel.QuestionModel
	if err := s.DB.First(&question, "question_id = ?", payload.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ve := validateLegacyPayload(question.QuestionType, payload.Text, len(payload.OptionIDs)); ve != nil {
		return nil, ve
	}

	// keep only options that belong to the question
	var validOptions []QuestionnaireModel.OptionModel
	if err := s.DB.Where("option_question_id = ?", question.QuestionID).Find(&validOptions).Error; err != nil {
		return nil, err
	}
	validSet := make(map[string]struct{}, len(validOptions))
	for _, o := range validOptions {
		validSet[o.OptionID] = struct{}{}
	}
	keep := make([]string, 0, len(payload.OptionIDs))
	for _, optionID := range dedupe(payload.OptionIDs) {
		if _, ok := validSet[optionID]; ok {
			keep = append(keep, optionID)
		}
	}

	newSlot := model.AnswerQuestionModel{
		AnswerQuestionAnswerQuestionnaireID: responseSet.AnswerQuestionnaireID,
		AnswerQuestionQuestionID:            question.QuestionID,
		AnswerQuestionType:                  question.QuestionType,
	}
	if question.QuestionType == QuestionnaireModel.QuestionTypeText {
		newSlot.AnswerQuestionText = payload.Text
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var old model.AnswerQuestionModel
		err := tx.Where("answer_question_answer_questionnaire_id = ? AND answer_question_question_id = ?",
			responseSet.AnswerQuestionnaireID, question.QuestionID).First(&old).Error
		switch {
		case err == nil:
			if err := tx.Where("answer_option_answer_question_id = ?", old.AnswerQuestionID).
				Delete(&model.AnswerOptionModel{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.AnswerQuestionModel{}, "answer_question_id = ?", old.AnswerQuestionID).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := tx.Create(&newSlot).Error; err != nil {
			return err
		}
		for _, optionID := range keep {
			selection := model.AnswerOptionModel{
				AnswerOptionAnswerQuestionID: newSlot.AnswerQuestionID,
				AnswerOptionOptionID:         optionID,
			}
			if err := tx.Create(&selection).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetSlot(newSlot.AnswerQuestionID, ident)
}

/* ===============================
   Small helpers
=================================*/

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
