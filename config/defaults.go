// =============================================================================
// 📦 GuardGate 默认配置
// =============================================================================
// 提供所有配置项的合理默认值
// =============================================================================
package config

import "time"

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Server:     DefaultServerConfig(),
		Guardrails: DefaultGuardrailsConfig(),
		Log:        DefaultLogConfig(),
		Telemetry:  DefaultTelemetryConfig(),
		JWT:        DefaultJWTConfig(),
	}
}

// DefaultServerConfig 返回默认服务器配置
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		HTTPPort:           8080,
		MetricsPort:        9090,
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       30 * time.Second,
		ShutdownTimeout:    15 * time.Second,
		CORSAllowedOrigins: nil,
		APIKeys:            nil,
		AllowQueryAPIKey:   false,
		RateLimitRPS:       0,
		RateLimitBurst:     200,
	}
}

// DefaultGuardrailsConfig 返回默认校验引擎配置
func DefaultGuardrailsConfig() GuardrailsConfig {
	return GuardrailsConfig{
		Parallel:      false,
		MaxParallel:   8,
		MaxTextLength: 100000,
		MaxGuardrails: 50,
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "info",
		Format:           "json",
		OutputPaths:      []string{"stdout"},
		EnableCaller:     true,
		EnableStacktrace: false,
	}
}

// DefaultTelemetryConfig 返回默认遥测配置
func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:      false,
		OTLPEndpoint: "localhost:4317",
		ServiceName:  "guardgate",
		SampleRate:   0.1,
	}
}

// DefaultJWTConfig 返回默认 JWT 配置
func DefaultJWTConfig() JWTConfig {
	return JWTConfig{
		Enabled: false,
		Secret:  "",
		Issuer:  "",
	}
}
