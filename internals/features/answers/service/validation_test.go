package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	QuestionnaireModel "kuesioner_backend/internals/features/questionnaires/model"
)

func strPtr(s string) *string { return &s }

func TestValidateSelection(t *testing.T) {
	questionID := "q-1"

	t.Run("text slot rejects options", func(t *testing.T) {
		ve := validateSelection(QuestionnaireModel.QuestionTypeText, questionID, questionID, 0)
		assert.NotNil(t, ve)
		assert.Equal(t, "text question accepts no options", ve.Message)
	})

	t.Run("option must belong to the slot's question", func(t *testing.T) {
		ve := validateSelection(QuestionnaireModel.QuestionTypeChoices, questionID, "q-2", 0)
		assert.NotNil(t, ve)
		assert.Equal(t, "option does not belong to this question", ve.Message)
	})

	t.Run("single choice allows only one selection", func(t *testing.T) {
		ve := validateSelection(QuestionnaireModel.QuestionTypeChoices, questionID, questionID, 1)
		assert.NotNil(t, ve)
		assert.Equal(t, "only one option allowed", ve.Message)
	})

	t.Run("single choice first selection passes", func(t *testing.T) {
		assert.Nil(t, validateSelection(QuestionnaireModel.QuestionTypeChoices, questionID, questionID, 0))
	})

	t.Run("multi choice allows additional selections", func(t *testing.T) {
		assert.Nil(t, validateSelection(QuestionnaireModel.QuestionTypeMultiChoices, questionID, questionID, 5))
	})
}

func TestValidateLegacyPayload(t *testing.T) {
	t.Run("text on a choice question rejected", func(t *testing.T) {
		ve := validateLegacyPayload(QuestionnaireModel.QuestionTypeChoices, strPtr("hello"), 0)
		assert.NotNil(t, ve)
		assert.Equal(t, "text not allowed for non-text question", ve.Message)
	})

	t.Run("empty text on a choice question passes", func(t *testing.T) {
		assert.Nil(t, validateLegacyPayload(QuestionnaireModel.QuestionTypeChoices, strPtr(""), 1))
	})

	t.Run("options on a text question rejected", func(t *testing.T) {
		ve := validateLegacyPayload(QuestionnaireModel.QuestionTypeText, strPtr("hello"), 1)
		assert.NotNil(t, ve)
		assert.Equal(t, "options not allowed for text question", ve.Message)
	})

	t.Run("two options on a single-choice question rejected", func(t *testing.T) {
		ve := validateLegacyPayload(QuestionnaireModel.QuestionTypeChoices, nil, 2)
		assert.NotNil(t, ve)
		assert.Equal(t, "only one option allowed", ve.Message)
	})

	t.Run("two options on a multi-choice question pass", func(t *testing.T) {
		assert.Nil(t, validateLegacyPayload(QuestionnaireModel.QuestionTypeMultiChoices, nil, 2))
	})

	t.Run("text answer on a text question passes", func(t *testing.T) {
		assert.Nil(t, validateLegacyPayload(QuestionnaireModel.QuestionTypeText, strPtr("some text"), 0))
	})
}

func TestValidateSlotReplacement(t *testing.T) {
	assert.NotNil(t, validateSlotReplacement(QuestionnaireModel.QuestionTypeText, 1))
	assert.NotNil(t, validateSlotReplacement(QuestionnaireModel.QuestionTypeChoices, 2))
	assert.Nil(t, validateSlotReplacement(QuestionnaireModel.QuestionTypeChoices, 1))
	assert.Nil(t, validateSlotReplacement(QuestionnaireModel.QuestionTypeMultiChoices, 3))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, dedupe([]string{"a", "b", "a", "b", "a"}))
	assert.Empty(t, dedupe(nil))
}
