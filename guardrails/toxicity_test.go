package guardrails

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToxicLanguageValidator(t *testing.T) {
	t.Run("missing threshold", func(t *testing.T) {
		_, err := NewToxicLanguageValidator(map[string]any{"validation_method": "full"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "threshold")
	})

	t.Run("missing validation_method", func(t *testing.T) {
		_, err := NewToxicLanguageValidator(map[string]any{"threshold": 0.5})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation_method")
	})

	t.Run("threshold out of range", func(t *testing.T) {
		_, err := NewToxicLanguageValidator(map[string]any{"threshold": 1.5, "validation_method": "full"})
		require.Error(t, err)
	})

	t.Run("invalid validation_method", func(t *testing.T) {
		_, err := NewToxicLanguageValidator(map[string]any{"threshold": 0.5, "validation_method": "word"})
		require.Error(t, err)
	})
}

func TestToxicLanguageValidator_Validate_Full(t *testing.T) {
	ctx := context.Background()

	v, err := NewToxicLanguageValidator(map[string]any{
		"threshold":         0.5,
		"validation_method": "full",
	})
	require.NoError(t, err)

	t.Run("clean text passes", func(t *testing.T) {
		result, err := v.Validate(ctx, "The weather is lovely today and the project is on schedule")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("toxic text fails", func(t *testing.T) {
		result, err := v.Validate(ctx, "I hate you, you worthless idiot")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "toxic language")
	})

	t.Run("empty text passes", func(t *testing.T) {
		result, err := v.Validate(ctx, "")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})
}

func TestToxicLanguageValidator_Validate_Sentence(t *testing.T) {
	ctx := context.Background()

	v, err := NewToxicLanguageValidator(map[string]any{
		"threshold":         0.5,
		"validation_method": "sentence",
	})
	require.NoError(t, err)

	t.Run("reports only the toxic sentence", func(t *testing.T) {
		result, err := v.Validate(ctx, "The report looks good. You are all morons. See you tomorrow.")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "morons")
		assert.NotContains(t, result.Message, "report looks good")

		sentences, ok := result.Metadata["toxic_sentences"].([]string)
		require.True(t, ok)
		assert.Len(t, sentences, 1)
	})

	t.Run("all sentences clean", func(t *testing.T) {
		result, err := v.Validate(ctx, "The report looks good. See you tomorrow.")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})
}

func TestToxicityScore_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, toxicityScore(""))
	assert.Equal(t, 0.0, toxicityScore("completely neutral text about programming"))

	score := toxicityScore("hate hate hate hate")
	assert.True(t, score <= 1.0, "score must be capped at 1, got %f", score)
	assert.True(t, score > 0.5)
}
