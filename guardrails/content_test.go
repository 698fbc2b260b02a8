package guardrails

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidLengthValidator(t *testing.T) {
	t.Run("missing min", func(t *testing.T) {
		_, err := NewValidLengthValidator(map[string]any{"max": 10})
		require.Error(t, err)
	})

	t.Run("fractional min", func(t *testing.T) {
		_, err := NewValidLengthValidator(map[string]any{"min": 1.5, "max": 10})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "integer")
	})

	t.Run("negative min", func(t *testing.T) {
		_, err := NewValidLengthValidator(map[string]any{"min": -1, "max": 10})
		require.Error(t, err)
	})

	t.Run("max below min", func(t *testing.T) {
		_, err := NewValidLengthValidator(map[string]any{"min": 10, "max": 1})
		require.Error(t, err)
	})
}

func TestValidLengthValidator_Validate(t *testing.T) {
	ctx := context.Background()

	v, err := NewValidLengthValidator(map[string]any{"min": 3.0, "max": 10.0})
	require.NoError(t, err)

	t.Run("within range", func(t *testing.T) {
		result, err := v.Validate(ctx, "hello")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 5, result.Metadata["length"])
	})

	t.Run("too short", func(t *testing.T) {
		result, err := v.Validate(ctx, "hi")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "longer output")
	})

	t.Run("too long", func(t *testing.T) {
		result, err := v.Validate(ctx, "this text is way too long")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "shorter output")
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		result, err := v.Validate(ctx, "héllo")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 5, result.Metadata["length"])
	})
}

func TestValidRangeValidator_Validate(t *testing.T) {
	ctx := context.Background()

	v, err := NewValidRangeValidator(map[string]any{"min": 0.0, "max": 100.0})
	require.NoError(t, err)

	tests := []struct {
		name        string
		text        string
		expectValid bool
	}{
		{"within range", "42", true},
		{"at lower bound", "0", true},
		{"at upper bound", "100", true},
		{"below range", "-1", false},
		{"above range", "100.5", false},
		{"whitespace tolerated", "  50  ", true},
		{"not a number", "forty two", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.Validate(ctx, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expectValid, result.Valid)
		})
	}
}

func TestValidChoicesValidator_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty choices rejected", func(t *testing.T) {
		_, err := NewValidChoicesValidator(map[string]any{"choices": []any{}})
		require.Error(t, err)
	})

	v, err := NewValidChoicesValidator(map[string]any{
		"choices": []any{"red", "green", "blue"},
	})
	require.NoError(t, err)

	t.Run("valid choice", func(t *testing.T) {
		result, err := v.Validate(ctx, "green")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("whitespace trimmed before compare", func(t *testing.T) {
		result, err := v.Validate(ctx, "  red  ")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("invalid choice lists options", func(t *testing.T) {
		result, err := v.Validate(ctx, "purple")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "red, green, blue")
	})

	t.Run("partial match is not enough", func(t *testing.T) {
		result, err := v.Validate(ctx, "re")
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})
}

func TestReadingTimeValidator_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("non positive max_time rejected", func(t *testing.T) {
		_, err := NewReadingTimeValidator(map[string]any{"max_time": 0})
		require.Error(t, err)
	})

	v, err := NewReadingTimeValidator(map[string]any{"max_time": 1.0})
	require.NoError(t, err)

	t.Run("short text passes", func(t *testing.T) {
		result, err := v.Validate(ctx, "a quick note")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 3, result.Metadata["word_count"])
	})

	t.Run("long text fails", func(t *testing.T) {
		// 300 词，按 200 词/分钟需要 1.5 分钟
		long := strings.TrimSpace(strings.Repeat("word ", 300))
		result, err := v.Validate(ctx, long)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "reading time")
	})
}
