package guardrails

import "context"

// Validator 验证器接口
// 每个验证器针对一段文本执行一项护栏检查
type Validator interface {
	// Validate 执行验证，返回验证结果
	Validate(ctx context.Context, text string) (*Result, error)
	// Name 返回验证器名称
	Name() string
}

// Result 单项验证结果
type Result struct {
	Valid    bool           `json:"valid"`
	Message  string         `json:"message,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewResult 创建一个有效的验证结果
func NewResult() *Result {
	return &Result{
		Valid:    true,
		Metadata: make(map[string]any),
	}
}

// Fail 将结果标记为无效并记录失败原因
func (r *Result) Fail(message string) {
	r.Valid = false
	r.Message = message
}

// Guardrail 请求中的单项护栏配置
type Guardrail struct {
	Name   string         `json:"name"`
	Config map[string]any `json:"config"`
}

// Failure 单项护栏失败信息
type Failure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}
