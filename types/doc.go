// Copyright (c) GuardGate Authors.
// Licensed under the MIT License.

/*
Package types 提供 GuardGate 服务的全局共享类型定义。

# 概述

types 是服务最底层的公共包，不依赖任何内部包，为 guardrails、api、
config 等上层模块提供统一的类型契约。所有跨包共享的错误码与
Context 传播工具均定义于此，以避免循环依赖。

# 核心类型

  - Error / ErrorCode — 结构化错误体系，错误码自动映射 HTTP 状态码，
    支持 Retryable 标记与逐项 Details 列表
  - Context 传播 — WithTraceID / WithUserID / WithRoles 及对应取值函数

# 主要能力

  - 错误工具链：NewError 链式构造（WithCause / WithHTTPStatus /
    WithRetryable / WithDetails）、IsRetryable、GetErrorCode
  - 请求标识传播：认证中间件写入用户与角色，处理器按需读取
*/
package types
