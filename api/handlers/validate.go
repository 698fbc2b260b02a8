package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BaSui01/guardgate/api"
	"github.com/BaSui01/guardgate/guardrails"
	"github.com/BaSui01/guardgate/types"
	"go.uber.org/zap"
)

// =============================================================================
// 🛡️ 文本校验 Handler
// =============================================================================

// ValidationRecorder 校验请求级指标回调
type ValidationRecorder interface {
	RecordValidation(passed bool, guardrailCount int, duration time.Duration)
}

// ValidateHandler 文本校验处理器
type ValidateHandler struct {
	engine   *guardrails.Engine
	registry *guardrails.Registry
	recorder ValidationRecorder

	// 请求级限制
	maxTextLength int
	maxGuardrails int

	logger *zap.Logger
}

// ValidateHandlerConfig 校验处理器配置
type ValidateHandlerConfig struct {
	// MaxTextLength 文本长度上限（rune 数），0 表示不限制
	MaxTextLength int
	// MaxGuardrails 单次请求护栏数量上限，0 表示不限制
	MaxGuardrails int
}

// NewValidateHandler 创建文本校验处理器
func NewValidateHandler(engine *guardrails.Engine, registry *guardrails.Registry, cfg ValidateHandlerConfig, logger *zap.Logger) *ValidateHandler {
	return &ValidateHandler{
		engine:        engine,
		registry:      registry,
		maxTextLength: cfg.MaxTextLength,
		maxGuardrails: cfg.MaxGuardrails,
		logger:        logger.With(zap.String("handler", "validate")),
	}
}

// WithRecorder 设置请求级指标回调
func (h *ValidateHandler) WithRecorder(recorder ValidationRecorder) *ValidateHandler {
	h.recorder = recorder
	return h
}

// =============================================================================
// 🎯 HTTP 处理程序
// =============================================================================

// HandleValidate 处理 POST /validate 请求
// @Summary 文本校验
// @Description 对文本依次执行请求中列出的护栏，返回整体结果与失败明细
// @Tags 校验
// @Accept json
// @Produce json
// @Param request body api.ValidationRequest true "校验请求"
// @Success 200 {object} api.ValidationResponse "校验完成（含未通过场景）"
// @Failure 400 {object} Response "验证器不存在或配置非法"
// @Failure 422 {object} Response "请求体不可解析或字段非法"
// @Router /validate [post]
func (h *ValidateHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteErrorMessage(w, http.StatusMethodNotAllowed, types.ErrInvalidRequest, "method not allowed", h.logger)
		return
	}

	if !ValidateContentType(w, r, h.logger) {
		return
	}

	var req api.ValidationRequest
	if err := DecodeJSONBody(w, r, &req, h.logger); err != nil {
		return
	}

	if apiErr := h.checkRequest(&req); apiErr != nil {
		WriteError(w, apiErr, h.logger)
		return
	}

	guardrailList := make([]guardrails.Guardrail, len(req.Guardrails))
	for i, g := range req.Guardrails {
		guardrailList[i] = guardrails.Guardrail{Name: g.Name, Config: g.Config}
	}

	// 先整体检查配置，任一护栏不可构造即拒绝整个请求
	if errs := h.engine.CheckConfigs(guardrailList); len(errs) > 0 {
		code := types.ErrInvalidGuardrailConfig
		message := "invalid guardrail configuration"
		if containsNotFound(errs) {
			code = types.ErrValidatorNotFound
			message = "unknown validator requested"
		}
		WriteError(w, types.NewError(code, message).WithDetails(errs...), h.logger)
		return
	}

	start := time.Now()
	passed, failures := h.engine.Run(r.Context(), req.Text, guardrailList)
	duration := time.Since(start)

	if h.recorder != nil {
		h.recorder.RecordValidation(passed, len(guardrailList), duration)
	}

	h.logger.Info("validation completed",
		zap.Bool("passed", passed),
		zap.Int("guardrails", len(guardrailList)),
		zap.Int("failures", len(failures)),
		zap.Duration("duration", duration),
	)

	// 响应体固定为 {passed, failed_guardrails}，空列表序列化为 []
	failed := make([]api.FailedGuardrail, 0, len(failures))
	for _, f := range failures {
		failed = append(failed, api.FailedGuardrail{Name: f.Name, Error: f.Error})
	}

	WriteJSON(w, http.StatusOK, api.ValidationResponse{
		Passed:           passed,
		FailedGuardrails: failed,
	})
}

// HandleListValidators 处理 GET /validate/validators 请求
// @Summary 验证器目录
// @Description 返回全部可用验证器及其必需参数
// @Tags 校验
// @Produce json
// @Success 200 {object} Response{data=api.ValidatorListResponse} "验证器目录"
// @Router /validate/validators [get]
func (h *ValidateHandler) HandleListValidators(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteErrorMessage(w, http.StatusMethodNotAllowed, types.ErrInvalidRequest, "method not allowed", h.logger)
		return
	}

	names := h.registry.Names()
	validators := make([]api.ValidatorInfo, 0, len(names))
	for _, name := range names {
		spec, ok := h.registry.Get(name)
		if !ok {
			continue
		}
		validators = append(validators, api.ValidatorInfo{
			Name:           spec.Name,
			RequiredParams: spec.RequiredParams,
		})
	}

	WriteSuccess(w, api.ValidatorListResponse{Validators: validators})
}

// =============================================================================
// 🔧 请求检查
// =============================================================================

// checkRequest 检查请求字段的结构合法性，非法时返回 422 错误
func (h *ValidateHandler) checkRequest(req *api.ValidationRequest) *types.Error {
	if strings.TrimSpace(req.Text) == "" {
		return types.NewError(types.ErrUnprocessable, "text must not be empty")
	}
	if h.maxTextLength > 0 && len([]rune(req.Text)) > h.maxTextLength {
		return types.NewError(types.ErrUnprocessable, "text exceeds the maximum allowed length")
	}
	if len(req.Guardrails) == 0 {
		return types.NewError(types.ErrUnprocessable, "guardrails must not be empty")
	}
	if h.maxGuardrails > 0 && len(req.Guardrails) > h.maxGuardrails {
		return types.NewError(types.ErrUnprocessable, "too many guardrails in a single request")
	}
	for i, g := range req.Guardrails {
		if strings.TrimSpace(g.Name) == "" {
			return types.NewError(types.ErrUnprocessable, "guardrail name must not be empty").
				WithDetails(indexDetail(i))
		}
	}
	return nil
}

// containsNotFound 判断配置错误中是否包含未知验证器
func containsNotFound(errs []string) bool {
	for _, e := range errs {
		if strings.Contains(e, "not found") {
			return true
		}
	}
	return false
}

func indexDetail(i int) string {
	return "guardrails[" + strconv.Itoa(i) + "]: name is blank"
}
