package guardrails

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ValidLengthValidator 文本长度验证器
// 字符数（按 rune 计）必须落在 [min, max] 区间内
type ValidLengthValidator struct {
	min int
	max int
}

// NewValidLengthValidator 从护栏配置构造长度验证器
// 必需参数 min 与 max
func NewValidLengthValidator(config map[string]any) (*ValidLengthValidator, error) {
	min, err := intParam(config, "min")
	if err != nil {
		return nil, err
	}
	max, err := intParam(config, "max")
	if err != nil {
		return nil, err
	}
	if min < 0 {
		return nil, fmt.Errorf("parameter \"min\" must not be negative")
	}
	if max < min {
		return nil, fmt.Errorf("parameter \"max\" must not be less than \"min\"")
	}

	return &ValidLengthValidator{min: min, max: max}, nil
}

// Name 返回验证器名称
func (v *ValidLengthValidator) Name() string {
	return "ValidLength"
}

// Validate 执行长度验证
func (v *ValidLengthValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	// 按 rune 计数，多字节字符算一个字符
	length := len([]rune(text))
	result.Metadata["length"] = length

	if length < v.min {
		result.Fail(fmt.Sprintf("value has length less than %d, please return a longer output", v.min))
	} else if length > v.max {
		result.Fail(fmt.Sprintf("value has length greater than %d, please return a shorter output", v.max))
	}

	return result, nil
}

// ValidRangeValidator 数值范围验证器
// 文本必须是可解析的数值且落在 [min, max] 区间内
type ValidRangeValidator struct {
	min float64
	max float64
}

// NewValidRangeValidator 从护栏配置构造数值范围验证器
// 必需参数 min 与 max
func NewValidRangeValidator(config map[string]any) (*ValidRangeValidator, error) {
	min, err := floatParam(config, "min")
	if err != nil {
		return nil, err
	}
	max, err := floatParam(config, "max")
	if err != nil {
		return nil, err
	}
	if max < min {
		return nil, fmt.Errorf("parameter \"max\" must not be less than \"min\"")
	}

	return &ValidRangeValidator{min: min, max: max}, nil
}

// Name 返回验证器名称
func (v *ValidRangeValidator) Name() string {
	return "ValidRange"
}

// Validate 执行数值范围验证
func (v *ValidRangeValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		result.Fail("value must be a number")
		return result, nil
	}

	result.Metadata["value"] = value
	if value < v.min || value > v.max {
		result.Fail(fmt.Sprintf("value must be between %v and %v", v.min, v.max))
	}

	return result, nil
}

// ValidChoicesValidator 枚举取值验证器
// 文本（去除首尾空白后）必须等于配置的候选项之一
type ValidChoicesValidator struct {
	choices []string
}

// NewValidChoicesValidator 从护栏配置构造枚举取值验证器
// 必需参数 choices：候选值列表
func NewValidChoicesValidator(config map[string]any) (*ValidChoicesValidator, error) {
	choices, err := stringSliceParam(config, "choices")
	if err != nil {
		return nil, err
	}
	if len(choices) == 0 {
		return nil, fmt.Errorf("parameter \"choices\" must not be empty")
	}

	return &ValidChoicesValidator{choices: choices}, nil
}

// Name 返回验证器名称
func (v *ValidChoicesValidator) Name() string {
	return "ValidChoices"
}

// Validate 执行枚举取值验证
func (v *ValidChoicesValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	trimmed := strings.TrimSpace(text)
	for _, choice := range v.choices {
		if trimmed == choice {
			return result, nil
		}
	}

	result.Fail(fmt.Sprintf("value is not in the choices list: %s", strings.Join(v.choices, ", ")))
	return result, nil
}

// readingWordsPerMinute 阅读速度基准
const readingWordsPerMinute = 200.0

// ReadingTimeValidator 阅读时长验证器
// 按 200 词/分钟估算阅读时长，超过 max_time（分钟）即验证失败
type ReadingTimeValidator struct {
	maxTime float64
}

// NewReadingTimeValidator 从护栏配置构造阅读时长验证器
// 必需参数 max_time：最大阅读时长（分钟）
func NewReadingTimeValidator(config map[string]any) (*ReadingTimeValidator, error) {
	maxTime, err := floatParam(config, "max_time")
	if err != nil {
		return nil, err
	}
	if maxTime <= 0 {
		return nil, fmt.Errorf("parameter \"max_time\" must be positive")
	}

	return &ReadingTimeValidator{maxTime: maxTime}, nil
}

// Name 返回验证器名称
func (v *ReadingTimeValidator) Name() string {
	return "ReadingTime"
}

// Validate 执行阅读时长验证
func (v *ReadingTimeValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	words := len(strings.Fields(text))
	minutes := float64(words) / readingWordsPerMinute
	result.Metadata["reading_time_minutes"] = minutes
	result.Metadata["word_count"] = words

	if minutes > v.maxTime {
		result.Fail(fmt.Sprintf("estimated reading time %.2f minutes exceeds the maximum of %v minutes",
			minutes, v.maxTime))
	}

	return result, nil
}
