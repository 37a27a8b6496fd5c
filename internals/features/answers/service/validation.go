package service

import (
	QuestionnaireModel "kuesioner_backend/internals/features/questionnaires/model"
)

// Pure answer-validation rules. Each returns the first violated rule as a
// *ValidationError, or nil when the candidate write is consistent.

// validateSelection checks a candidate (slot, option) pair:
//   - the slot's question must not be a text question
//   - the option must belong to the slot's question
//   - a single-choice slot may hold at most one selection
func validateSelection(slotType int, slotQuestionID, optionQuestionID string, existingSelections int64) *ValidationError {
	if slotType == QuestionnaireModel.QuestionTypeText {
		return invalid("answer_question", "text question accepts no options")
	}
	if optionQuestionID != slotQuestionID {
		return invalid("option", "option does not belong to this question")
	}
	if slotType == QuestionnaireModel.QuestionTypeChoices && existingSelections > 0 {
		return invalid("option", "only one option allowed")
	}
	return nil
}

// validateLegacyPayload checks the combined single-shot submission
// {question, text, answer_options[]} against the question's type.
func validateLegacyPayload(questionType int, text *string, optionCount int) *ValidationError {
	hasText := text != nil && *text != ""

	if questionType != QuestionnaireModel.QuestionTypeText && hasText {
		return invalid("text", "text not allowed for non-text question")
	}
	if questionType == QuestionnaireModel.QuestionTypeText && optionCount > 0 {
		return invalid("answer_options", "options not allowed for text question")
	}
	if questionType == QuestionnaireModel.QuestionTypeChoices && optionCount > 1 {
		return invalid("answer_options", "only one option allowed")
	}
	return nil
}

// validateSlotReplacement checks a replacement selection set for a slot update.
func validateSlotReplacement(slotType int, optionCount int) *ValidationError {
	if slotType == QuestionnaireModel.QuestionTypeText {
		return invalid("option_ids", "options not allowed for text question")
	}
	if slotType == QuestionnaireModel.QuestionTypeChoices && optionCount > 1 {
		return invalid("option_ids", "only one option allowed")
	}
	return nil
}
