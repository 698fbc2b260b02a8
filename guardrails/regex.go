package guardrails

import (
	"context"
	"fmt"
	"regexp"
)

// MatchType 正则匹配方式
type MatchType string

const (
	// MatchTypeSearch 搜索匹配：文本任意位置命中即通过
	MatchTypeSearch MatchType = "search"
	// MatchTypeFullMatch 全量匹配：整段文本必须完整匹配
	MatchTypeFullMatch MatchType = "fullmatch"
)

// RegexMatchValidator 正则匹配验证器
// 文本必须按配置的方式命中给定正则，否则验证失败
type RegexMatchValidator struct {
	pattern   *regexp.Regexp
	source    string
	matchType MatchType
}

// NewRegexMatchValidator 从护栏配置构造正则匹配验证器
// 必需参数 regex，可选参数 match_type（search 或 fullmatch，默认 search）
func NewRegexMatchValidator(config map[string]any) (*RegexMatchValidator, error) {
	source, err := stringParam(config, "regex")
	if err != nil {
		return nil, err
	}

	matchTypeStr, err := optionalStringParam(config, "match_type", string(MatchTypeSearch))
	if err != nil {
		return nil, err
	}

	matchType := MatchType(matchTypeStr)
	switch matchType {
	case MatchTypeSearch, MatchTypeFullMatch:
	default:
		return nil, fmt.Errorf("parameter \"match_type\" must be %q or %q", MatchTypeSearch, MatchTypeFullMatch)
	}

	compileSource := source
	if matchType == MatchTypeFullMatch {
		// 全量匹配通过锚定实现
		compileSource = "^(?:" + source + ")$"
	}

	pattern, err := regexp.Compile(compileSource)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %v", source, err)
	}

	return &RegexMatchValidator{
		pattern:   pattern,
		source:    source,
		matchType: matchType,
	}, nil
}

// Name 返回验证器名称
func (v *RegexMatchValidator) Name() string {
	return "RegexMatch"
}

// Validate 执行正则匹配验证
func (v *RegexMatchValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	if v.pattern.MatchString(text) {
		return result, nil
	}

	result.Fail(fmt.Sprintf("result must match the pattern %s", v.source))
	result.Metadata["match_type"] = string(v.matchType)
	return result, nil
}
