// Copyright (c) GuardGate Authors.
// Licensed under the MIT License.

/*
Package handlers 提供 GuardGate HTTP API 的请求处理器实现。

# 概述

handlers 包实现了 GuardGate 所有 HTTP 端点的请求处理逻辑，
包括文本校验、验证器目录、健康检查以及统一的响应/错误处理。
所有 Handler 均遵循标准 net/http 接口，通过 Swagger 注解生成 API 文档。

# 核心类型

  - ValidateHandler  — 文本校验处理器（POST /validate）与验证器目录
  - HealthHandler    — 服务健康检查（/health, /healthz, /ready）与版本信息
  - Response         — 统一 JSON 响应结构（success + data + error + timestamp）
  - ErrorInfo        — 结构化错误信息，含 code、message、details、retryable 标记
  - ResponseWriter   — 包装 http.ResponseWriter 以捕获状态码
  - HealthCheck      — 可插拔健康检查接口（FuncHealthCheck 等）

# 主要能力

  - 统一响应格式：WriteSuccess / WriteError / WriteJSON 辅助函数
  - 请求验证：DecodeJSONBody（1 MB 限制 + 严格模式）、ValidateContentType
  - ErrorCode → HTTP 状态码自动映射（4xx/5xx）
  - 校验语义：不可解析或字段非法返回 422，验证器不存在或配置非法返回 400
  - 校验响应固定为 {passed, failed_guardrails}，失败项按请求顺序排列
  - 可扩展健康检查：RegisterCheck 注册自定义 HealthCheck 实现
*/
package handlers
