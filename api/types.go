package api

// =============================================================================
// 校验请求类型
// =============================================================================

// ValidationRequest 代表一次文本校验请求。
// @Description 文本校验请求结构
type ValidationRequest struct {
	// 待校验文本
	Text string `json:"text" example:"hello world" binding:"required"`
	// 要执行的护栏列表
	Guardrails []GuardrailConfig `json:"guardrails" binding:"required"`
}

// GuardrailConfig 代表请求中的单个护栏配置。
// @Description 护栏配置结构
type GuardrailConfig struct {
	// 验证器名称（例如 RegexMatch、ToxicLanguage）
	Name string `json:"name" example:"RegexMatch" binding:"required"`
	// 验证器配置参数
	Config map[string]any `json:"config,omitempty"`
}

// =============================================================================
// 校验响应类型
// =============================================================================

// ValidationResponse 代表校验结果。
// @Description 校验响应结构
type ValidationResponse struct {
	// 是否全部通过
	Passed bool `json:"passed" example:"false"`
	// 未通过的护栏列表，按请求顺序排列
	FailedGuardrails []FailedGuardrail `json:"failed_guardrails"`
}

// FailedGuardrail 代表单个未通过的护栏。
// @Description 护栏失败详情结构
type FailedGuardrail struct {
	// 验证器名称
	Name string `json:"name" example:"ToxicLanguage"`
	// 失败原因
	Error string `json:"error" example:"the text contains toxic language"`
}

// =============================================================================
// 目录与服务信息类型
// =============================================================================

// ValidatorInfo 代表目录中的单个验证器。
// @Description 验证器目录条目
type ValidatorInfo struct {
	// 验证器名称
	Name string `json:"name" example:"ValidLength"`
	// 必需的配置参数
	RequiredParams []string `json:"required_params,omitempty" example:"min,max"`
}

// ValidatorListResponse 代表验证器目录。
// @Description 验证器目录响应
type ValidatorListResponse struct {
	// 可用验证器列表
	Validators []ValidatorInfo `json:"validators"`
}

// ServiceInfo 代表服务自述信息。
// @Description 服务信息结构
type ServiceInfo struct {
	// 服务名称
	Service string `json:"service" example:"guardgate"`
	// 服务版本
	Version string `json:"version" example:"1.0.0"`
	// 服务描述
	Description string `json:"description"`
	// 主要端点
	Endpoints map[string]string `json:"endpoints"`
}
