// 版权所有 2024 GuardGate Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 metrics 提供基于 Prometheus 的全链路指标采集能力，覆盖
HTTP、校验请求与单项护栏三大维度。

# 概述

本包通过 Collector 统一注册和记录 Prometheus 指标，使用 promauto
自动注册机制，避免手动管理 Registry。所有指标按 namespace 隔离，
支持多维度 label 分组，便于 Grafana 等工具进行可视化与告警。

# 核心类型

  - Collector：指标收集器，持有 Counter、Histogram 等
    Prometheus 指标，按业务域分组管理。同时实现
    guardrails.Observer 接口，由校验引擎直接回调。

# 主要能力

  - HTTP 指标：请求总数、请求耗时、请求/响应体大小，
    按 method/path/status 分组，状态码归类为 2xx/3xx/4xx/5xx。
  - 校验指标：校验请求总数（passed/failed）、端到端耗时、
    每次请求的护栏数量分布。
  - 护栏指标：单项护栏执行计数（pass/fail/error）与耗时，
    按 validator 名称分组。
*/
package metrics
