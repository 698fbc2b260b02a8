package guardrails

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGibberishTextValidator(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v, err := NewGibberishTextValidator(map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, 0.5, v.threshold)
		assert.Equal(t, ValidationMethodSentence, v.method)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		_, err := NewGibberishTextValidator(map[string]any{"threshold": -0.1})
		require.Error(t, err)
	})

	t.Run("invalid validation_method", func(t *testing.T) {
		_, err := NewGibberishTextValidator(map[string]any{"validation_method": "paragraph"})
		require.Error(t, err)
	})
}

func TestGibberishTextValidator_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("full method on gibberish text", func(t *testing.T) {
		v, err := NewGibberishTextValidator(map[string]any{"validation_method": "full"})
		require.NoError(t, err)

		result, err := v.Validate(ctx, "asdfgh qwrtpz xkcdvb")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "gibberish")
	})

	t.Run("full method on normal text", func(t *testing.T) {
		v, err := NewGibberishTextValidator(map[string]any{"validation_method": "full"})
		require.NoError(t, err)

		result, err := v.Validate(ctx, "this is a perfectly normal sentence")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("sentence method isolates the gibberish sentence", func(t *testing.T) {
		v, err := NewGibberishTextValidator(map[string]any{})
		require.NoError(t, err)

		result, err := v.Validate(ctx, "Hello there, this part reads fine. asdfgh qwrtpz xkcdvb.")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "asdfgh")
		assert.NotContains(t, result.Message, "reads fine")
	})

	t.Run("empty text passes", func(t *testing.T) {
		v, err := NewGibberishTextValidator(map[string]any{})
		require.NoError(t, err)

		result, err := v.Validate(ctx, "")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})
}

func TestIsGibberishWord(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"hello", false},
		{"the", false},
		{"xyz", false}, // 短词不判
		{"qwrtpzk", true},
		{"world", false},
		{"aaaahhhh", true},
		{"ab12cd34", true},
		{"12345", false},  // 纯数字不判
		{"rhythm", false}, // y 计作元音
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, isGibberishWord(tt.word), "word %q", tt.word)
		})
	}
}
