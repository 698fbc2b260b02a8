// 版权所有 2024 GuardGate Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 guardrails 提供命名护栏验证器的注册、构造与调度执行能力。

# 概述

guardrails 是 GuardGate 服务的核心包：调用方提交一段文本与一组
按名称引用的护栏配置，本包负责查找验证器、校验配置、构造实例、
逐项执行并汇总失败结果。所有护栏都会执行完毕，不会因某一项失败
而提前终止。

# 核心接口与类型

  - [Validator]：单项验证器接口，提供 Validate / Name
  - [Result]：单项验证结果，包含有效性、失败消息与附加元数据
  - [Guardrail]：请求中的单项护栏（名称 + 配置）
  - [Failure]：单项护栏失败信息（名称 + 错误消息）

# 注册表

  - [Registry]：名称到验证器描述的注册表，提供 Register / Get /
    CheckConfig / Build
  - [Spec]：验证器描述，包含必需参数列表与构造工厂
  - [DefaultRegistry]：注册全部内置验证器的注册表

# 调度引擎

  - [Engine]：护栏调度引擎，提供 CheckConfigs 与 Run
  - [RunModeSequential]：顺序执行（默认）
  - [RunModeParallel]：并行执行，结果仍按请求顺序收集
  - [Observer]：执行事件观察者接口，用于指标采集

# 内置验证器

  - [RegexMatchValidator]：正则匹配（search / fullmatch）
  - [CompetitorCheckValidator]：竞品名称检测
  - [ToxicLanguageValidator]：毒性语言启发式评分
  - [DetectPIIValidator]：PII 实体识别（邮箱、电话、卡号、IP、SSN）
  - [SecretsPresentValidator]：机密凭据格式扫描
  - [GibberishTextValidator]：乱码文本启发式评分
  - [ValidLengthValidator] / [ValidRangeValidator] / [ValidChoicesValidator]
  - [ValidURLValidator] / [ValidJSONValidator] / [ReadingTimeValidator]
  - [LowerCaseValidator] / [UpperCaseValidator] / [OneLineValidator] /
    [TwoWordsValidator]

# 扩展方式

通过 Registry.Register 注册自定义 Spec 即可接入新的护栏规则，
工厂函数从 map[string]any 配置构造验证器实例。
*/
package guardrails
