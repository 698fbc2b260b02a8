package guardrails

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"
)

func TestValidLengthValidator_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		min := rapid.IntRange(0, 50).Draw(t, "min")
		max := rapid.IntRange(min, 100).Draw(t, "max")
		text := rapid.String().Draw(t, "text")

		v, err := NewValidLengthValidator(map[string]any{"min": min, "max": max})
		require.NoError(t, err)

		result, err := v.Validate(context.Background(), text)
		require.NoError(t, err)

		length := len([]rune(text))
		expected := length >= min && length <= max
		if result.Valid != expected {
			t.Fatalf("length %d with bounds [%d, %d]: got valid=%v", length, min, max, result.Valid)
		}
	})
}

func TestLowerCaseValidator_Property(t *testing.T) {
	v, err := NewLowerCaseValidator(nil)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		text := strings.ToLower(rapid.String().Draw(t, "text"))

		result, err := v.Validate(context.Background(), text)
		require.NoError(t, err)
		if !result.Valid {
			t.Fatalf("lowered text %q rejected", text)
		}
	})
}

func TestValidChoicesValidator_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		choices := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,10}`), 1, 10).Draw(t, "choices")
		picked := rapid.SampledFrom(choices).Draw(t, "picked")

		anyChoices := make([]any, len(choices))
		for i, c := range choices {
			anyChoices[i] = c
		}

		v, err := NewValidChoicesValidator(map[string]any{"choices": anyChoices})
		require.NoError(t, err)

		result, err := v.Validate(context.Background(), picked)
		require.NoError(t, err)
		if !result.Valid {
			t.Fatalf("picked choice %q rejected", picked)
		}
	})
}

// 串行与并行模式必须产出完全一致的失败列表
func TestEngine_Property_ParallelMatchesSequential(t *testing.T) {
	r := NewRegistry()
	registerStub(r, "PassA", true, "", nil)
	registerStub(r, "PassB", true, "", nil)
	registerStub(r, "FailA", false, "fail a", nil)
	registerStub(r, "FailB", false, "fail b", nil)
	names := []string{"PassA", "PassB", "FailA", "FailB"}

	sequential := NewEngine(r, nil, zap.NewNop())
	parallel := NewEngine(r, &EngineConfig{Mode: RunModeParallel, MaxParallel: 3}, zap.NewNop())

	rapid.Check(t, func(t *rapid.T) {
		picked := rapid.SliceOfN(rapid.SampledFrom(names), 1, 12).Draw(t, "guardrails")

		guardrails := make([]Guardrail, len(picked))
		for i, name := range picked {
			guardrails[i] = Guardrail{Name: name}
		}

		seqPassed, seqFailures := sequential.Run(context.Background(), "text", guardrails)
		parPassed, parFailures := parallel.Run(context.Background(), "text", guardrails)

		if seqPassed != parPassed {
			t.Fatalf("passed mismatch: sequential=%v parallel=%v", seqPassed, parPassed)
		}
		if len(seqFailures) != len(parFailures) {
			t.Fatalf("failure count mismatch: %d vs %d", len(seqFailures), len(parFailures))
		}
		for i := range seqFailures {
			if seqFailures[i] != parFailures[i] {
				t.Fatalf("failure %d mismatch: %+v vs %+v", i, seqFailures[i], parFailures[i])
			}
		}
	})
}
