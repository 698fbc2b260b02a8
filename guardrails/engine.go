package guardrails

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunMode 引擎执行模式
type RunMode string

const (
	// RunModeSequential 顺序模式：按请求顺序逐个执行
	RunModeSequential RunMode = "sequential"
	// RunModeParallel 并行模式：并发执行所有护栏并按请求顺序收集结果
	RunModeParallel RunMode = "parallel"
)

// EngineConfig 引擎配置
type EngineConfig struct {
	// Mode 执行模式
	Mode RunMode
	// MaxParallel 并行模式下的最大并发数，0 表示不限制
	MaxParallel int
}

// DefaultEngineConfig 返回默认配置
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Mode:        RunModeSequential,
		MaxParallel: 0,
	}
}

// Observer 接收引擎执行事件，用于指标采集
type Observer interface {
	// ObserveCheck 记录单项护栏检查（result: pass, fail, error）
	ObserveCheck(validator, result string, duration time.Duration)
}

// Engine 护栏调度引擎
// 针对一段文本执行一组命名护栏：先统一校验配置，再逐个构造并运行验证器，
// 收集所有失败项而不提前终止
type Engine struct {
	registry *Registry
	mode     RunMode
	maxPar   int
	observer Observer
	logger   *zap.Logger
}

// NewEngine 创建护栏调度引擎
func NewEngine(registry *Registry, config *EngineConfig, logger *zap.Logger) *Engine {
	if config == nil {
		config = DefaultEngineConfig()
	}

	return &Engine{
		registry: registry,
		mode:     config.Mode,
		maxPar:   config.MaxParallel,
		logger:   logger.With(zap.String("component", "guardrails_engine")),
	}
}

// WithObserver 设置执行事件观察者
func (e *Engine) WithObserver(observer Observer) *Engine {
	e.observer = observer
	return e
}

// Registry 返回引擎使用的注册表
func (e *Engine) Registry() *Registry {
	return e.registry
}

// CheckConfigs 统一校验所有护栏配置
// 返回全部配置错误消息（"名称: 错误" 形式），全部有效时返回空切片
func (e *Engine) CheckConfigs(guardrails []Guardrail) []string {
	var errs []string

	for _, g := range guardrails {
		if err := e.registry.CheckConfig(g.Name, g.Config); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %s", g.Name, err.Error()))
		}
	}

	return errs
}

// Run 针对文本执行所有护栏
// 每项护栏单独构造验证器实例并执行；构造失败、执行出错与验证不通过
// 都转换为该护栏的失败项。返回整体是否通过与按请求顺序排列的失败列表
func (e *Engine) Run(ctx context.Context, text string, guardrails []Guardrail) (bool, []Failure) {
	if e.mode == RunModeParallel {
		return e.runParallel(ctx, text, guardrails)
	}

	var failures []Failure

	for _, g := range guardrails {
		// 上下文取消后剩余护栏统一记为失败
		select {
		case <-ctx.Done():
			failures = append(failures, Failure{
				Name:  g.Name,
				Error: "validation cancelled: " + ctx.Err().Error(),
			})
			continue
		default:
		}

		if failure := e.runOne(ctx, text, g); failure != nil {
			failures = append(failures, *failure)
		}
	}

	return len(failures) == 0, failures
}

// runParallel 并发执行所有护栏并按请求顺序收集结果
func (e *Engine) runParallel(ctx context.Context, text string, guardrails []Guardrail) (bool, []Failure) {
	results := make([]*Failure, len(guardrails))

	g, gctx := errgroup.WithContext(ctx)
	if e.maxPar > 0 {
		g.SetLimit(e.maxPar)
	}

	for i, guard := range guardrails {
		i, guard := i, guard
		g.Go(func() error {
			results[i] = e.runOne(gctx, text, guard)
			return nil
		})
	}

	// runOne 从不返回 error，这里只等待全部完成
	_ = g.Wait()

	var failures []Failure
	for _, f := range results {
		if f != nil {
			failures = append(failures, *f)
		}
	}

	return len(failures) == 0, failures
}

// runOne 执行单项护栏，通过时返回 nil
func (e *Engine) runOne(ctx context.Context, text string, g Guardrail) *Failure {
	start := time.Now()

	validator, err := e.registry.Build(g.Name, g.Config)
	if err != nil {
		e.observe(g.Name, "error", time.Since(start))
		e.logger.Debug("validator construction failed",
			zap.String("validator", g.Name),
			zap.Error(err),
		)
		return &Failure{
			Name:  g.Name,
			Error: "error initializing validator: " + err.Error(),
		}
	}

	result, err := validator.Validate(ctx, text)
	duration := time.Since(start)

	if err != nil {
		e.observe(g.Name, "error", duration)
		e.logger.Debug("validator execution failed",
			zap.String("validator", g.Name),
			zap.Error(err),
		)
		return &Failure{
			Name:  g.Name,
			Error: "unexpected error during validation: " + err.Error(),
		}
	}

	if !result.Valid {
		e.observe(g.Name, "fail", duration)
		return &Failure{
			Name:  g.Name,
			Error: result.Message,
		}
	}

	e.observe(g.Name, "pass", duration)
	return nil
}

func (e *Engine) observe(validator, result string, duration time.Duration) {
	if e.observer != nil {
		e.observer.ObserveCheck(validator, result, duration)
	}
}
