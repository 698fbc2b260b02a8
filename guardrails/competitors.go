package guardrails

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// CompetitorCheckValidator 竞品名称检测验证器
// 文本中出现任一配置的竞品名称即验证失败
type CompetitorCheckValidator struct {
	competitors []string
	patterns    []*regexp.Regexp
}

// NewCompetitorCheckValidator 从护栏配置构造竞品检测验证器
// 必需参数 competitors：竞品名称列表
func NewCompetitorCheckValidator(config map[string]any) (*CompetitorCheckValidator, error) {
	competitors, err := stringSliceParam(config, "competitors")
	if err != nil {
		return nil, err
	}
	if len(competitors) == 0 {
		return nil, fmt.Errorf("parameter \"competitors\" must not be empty")
	}

	// 逐个编译为不区分大小写的词边界匹配
	patterns := make([]*regexp.Regexp, 0, len(competitors))
	names := make([]string, 0, len(competitors))
	for _, name := range competitors {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(trimmed) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("invalid competitor name %q: %v", name, err)
		}
		patterns = append(patterns, pattern)
		names = append(names, trimmed)
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("parameter \"competitors\" must contain at least one non-empty name")
	}

	return &CompetitorCheckValidator{
		competitors: names,
		patterns:    patterns,
	}, nil
}

// Name 返回验证器名称
func (v *CompetitorCheckValidator) Name() string {
	return "CompetitorCheck"
}

// Validate 执行竞品名称检测
func (v *CompetitorCheckValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	var found []string
	for i, pattern := range v.patterns {
		if pattern.MatchString(text) {
			found = append(found, v.competitors[i])
		}
	}

	if len(found) == 0 {
		return result, nil
	}

	result.Fail(fmt.Sprintf("found the following competitors: %s", strings.Join(found, ", ")))
	result.Metadata["competitors_found"] = found
	return result, nil
}

// Detect 返回文本中命中的竞品名称
func (v *CompetitorCheckValidator) Detect(text string) []string {
	var found []string
	for i, pattern := range v.patterns {
		if pattern.MatchString(text) {
			found = append(found, v.competitors[i])
		}
	}
	return found
}
