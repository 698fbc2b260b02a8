package guardrails

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// LowerCaseValidator 小写验证器：文本必须全部为小写
type LowerCaseValidator struct{}

// NewLowerCaseValidator 构造小写验证器，无配置参数
func NewLowerCaseValidator(config map[string]any) (*LowerCaseValidator, error) {
	return &LowerCaseValidator{}, nil
}

// Name 返回验证器名称
func (v *LowerCaseValidator) Name() string {
	return "LowerCase"
}

// Validate 执行小写验证
func (v *LowerCaseValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()
	if text != strings.ToLower(text) {
		result.Fail("value must be lower case")
	}
	return result, nil
}

// UpperCaseValidator 大写验证器：文本必须全部为大写
type UpperCaseValidator struct{}

// NewUpperCaseValidator 构造大写验证器，无配置参数
func NewUpperCaseValidator(config map[string]any) (*UpperCaseValidator, error) {
	return &UpperCaseValidator{}, nil
}

// Name 返回验证器名称
func (v *UpperCaseValidator) Name() string {
	return "UpperCase"
}

// Validate 执行大写验证
func (v *UpperCaseValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()
	if text != strings.ToUpper(text) {
		result.Fail("value must be upper case")
	}
	return result, nil
}

// OneLineValidator 单行验证器：文本去除首尾空白后不得包含换行
type OneLineValidator struct{}

// NewOneLineValidator 构造单行验证器，无配置参数
func NewOneLineValidator(config map[string]any) (*OneLineValidator, error) {
	return &OneLineValidator{}, nil
}

// Name 返回验证器名称
func (v *OneLineValidator) Name() string {
	return "OneLine"
}

// Validate 执行单行验证
func (v *OneLineValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()
	if strings.ContainsAny(strings.TrimSpace(text), "\n\r") {
		result.Fail("value must be a single line")
	}
	return result, nil
}

// TwoWordsValidator 双词验证器：文本必须恰好包含两个词
type TwoWordsValidator struct{}

// NewTwoWordsValidator 构造双词验证器，无配置参数
func NewTwoWordsValidator(config map[string]any) (*TwoWordsValidator, error) {
	return &TwoWordsValidator{}, nil
}

// Name 返回验证器名称
func (v *TwoWordsValidator) Name() string {
	return "TwoWords"
}

// Validate 执行双词验证
func (v *TwoWordsValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()
	words := strings.Fields(text)
	if len(words) != 2 {
		result.Fail(fmt.Sprintf("value must be exactly two words, got %d", len(words)))
	}
	return result, nil
}

// ValidURLValidator URL 验证器
// 文本必须是带 scheme 与 host 的合法 URL
type ValidURLValidator struct{}

// NewValidURLValidator 构造 URL 验证器，无配置参数
func NewValidURLValidator(config map[string]any) (*ValidURLValidator, error) {
	return &ValidURLValidator{}, nil
}

// Name 返回验证器名称
func (v *ValidURLValidator) Name() string {
	return "ValidURL"
}

// Validate 执行 URL 验证
func (v *ValidURLValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	parsed, err := url.Parse(strings.TrimSpace(text))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		result.Fail("value must be a valid URL")
	}

	return result, nil
}

// ValidJSONValidator JSON 验证器：文本必须是合法 JSON
type ValidJSONValidator struct{}

// NewValidJSONValidator 构造 JSON 验证器，无配置参数
func NewValidJSONValidator(config map[string]any) (*ValidJSONValidator, error) {
	return &ValidJSONValidator{}, nil
}

// Name 返回验证器名称
func (v *ValidJSONValidator) Name() string {
	return "ValidJson"
}

// Validate 执行 JSON 验证
func (v *ValidJSONValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()
	if !json.Valid([]byte(text)) {
		result.Fail("value must be valid JSON")
	}
	return result, nil
}
