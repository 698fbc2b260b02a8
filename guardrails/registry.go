package guardrails

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory 从调用方提供的配置构造验证器实例
type Factory func(config map[string]any) (Validator, error)

// Spec 注册表中的单项验证器描述
type Spec struct {
	// Name 验证器名称（请求中的 guardrail name）
	Name string
	// RequiredParams 必需的配置参数
	RequiredParams []string
	// Factory 构造函数
	Factory Factory
}

// Registry 验证器注册表
// 按名称维护验证器描述，支持配置校验与实例构造
type Registry struct {
	mu    sync.RWMutex
	specs map[string]Spec
}

// NewRegistry 创建空的验证器注册表
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[string]Spec),
	}
}

// Register 注册验证器描述，同名覆盖
func (r *Registry) Register(spec Spec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[spec.Name] = spec
}

// Unregister 注销验证器
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.specs, name)
}

// Get 获取验证器描述
func (r *Registry) Get(name string) (Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[name]
	return spec, ok
}

// Names 返回按字典序排序的全部验证器名称
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len 返回注册的验证器数量
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.specs)
}

// CheckConfig 校验单项护栏配置
// 检查验证器是否存在以及必需参数是否齐全，不构造实例
func (r *Registry) CheckConfig(name string, config map[string]any) error {
	spec, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("validator %q not found", name)
	}

	var missing []string
	for _, param := range spec.RequiredParams {
		if _, ok := config[param]; !ok {
			missing = append(missing, param)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration parameters: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Build 构造验证器实例
func (r *Registry) Build(name string, config map[string]any) (Validator, error) {
	spec, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("validator %q not found", name)
	}
	return spec.Factory(config)
}

// DefaultRegistry 返回注册了全部内置验证器的注册表
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(Spec{
		Name:           "RegexMatch",
		RequiredParams: []string{"regex"},
		Factory: func(config map[string]any) (Validator, error) {
			return NewRegexMatchValidator(config)
		},
	})
	r.Register(Spec{
		Name:           "CompetitorCheck",
		RequiredParams: []string{"competitors"},
		Factory: func(config map[string]any) (Validator, error) {
			return NewCompetitorCheckValidator(config)
		},
	})
	r.Register(Spec{
		Name:           "ToxicLanguage",
		RequiredParams: []string{"threshold", "validation_method"},
		Factory: func(config map[string]any) (Validator, error) {
			return NewToxicLanguageValidator(config)
		},
	})
	r.Register(Spec{
		Name: "DetectPII",
		Factory: func(config map[string]any) (Validator, error) {
			return NewDetectPIIValidator(config)
		},
	})
	r.Register(Spec{
		Name: "SecretsPresent",
		Factory: func(config map[string]any) (Validator, error) {
			return NewSecretsPresentValidator(config)
		},
	})
	r.Register(Spec{
		Name: "GibberishText",
		Factory: func(config map[string]any) (Validator, error) {
			return NewGibberishTextValidator(config)
		},
	})
	r.Register(Spec{
		Name:           "ValidLength",
		RequiredParams: []string{"min", "max"},
		Factory: func(config map[string]any) (Validator, error) {
			return NewValidLengthValidator(config)
		},
	})
	r.Register(Spec{
		Name:           "ValidRange",
		RequiredParams: []string{"min", "max"},
		Factory: func(config map[string]any) (Validator, error) {
			return NewValidRangeValidator(config)
		},
	})
	r.Register(Spec{
		Name:           "ValidChoices",
		RequiredParams: []string{"choices"},
		Factory: func(config map[string]any) (Validator, error) {
			return NewValidChoicesValidator(config)
		},
	})
	r.Register(Spec{
		Name:           "ReadingTime",
		RequiredParams: []string{"max_time"},
		Factory: func(config map[string]any) (Validator, error) {
			return NewReadingTimeValidator(config)
		},
	})
	r.Register(Spec{
		Name: "ValidURL",
		Factory: func(config map[string]any) (Validator, error) {
			return NewValidURLValidator(config)
		},
	})
	r.Register(Spec{
		Name: "ValidJson",
		Factory: func(config map[string]any) (Validator, error) {
			return NewValidJSONValidator(config)
		},
	})
	r.Register(Spec{
		Name: "LowerCase",
		Factory: func(config map[string]any) (Validator, error) {
			return NewLowerCaseValidator(config)
		},
	})
	r.Register(Spec{
		Name: "UpperCase",
		Factory: func(config map[string]any) (Validator, error) {
			return NewUpperCaseValidator(config)
		},
	})
	r.Register(Spec{
		Name: "OneLine",
		Factory: func(config map[string]any) (Validator, error) {
			return NewOneLineValidator(config)
		},
	})
	r.Register(Spec{
		Name: "TwoWords",
		Factory: func(config map[string]any) (Validator, error) {
			return NewTwoWordsValidator(config)
		},
	})

	return r
}
