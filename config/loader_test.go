// 配置加载器与默认配置测试。
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- 默认配置测试 ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// 验证服务器默认值
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Server.APIKeys)

	// 验证引擎默认值
	assert.False(t, cfg.Guardrails.Parallel)
	assert.Equal(t, 8, cfg.Guardrails.MaxParallel)
	assert.Equal(t, 100000, cfg.Guardrails.MaxTextLength)
	assert.Equal(t, 50, cfg.Guardrails.MaxGuardrails)

	// 验证 Log 默认值
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	// 验证 Telemetry 与 JWT 默认关闭
	assert.False(t, cfg.Telemetry.Enabled)
	assert.False(t, cfg.JWT.Enabled)

	// 默认配置必须自洽
	require.NoError(t, cfg.Validate())
}

// --- Loader 测试 ---

func TestLoader_LoadDefaults(t *testing.T) {
	// 不指定配置文件，应该返回默认值
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "guardgate", cfg.Telemetry.ServiceName)
}

func TestLoader_LoadFromYAML(t *testing.T) {
	// 创建临时配置文件
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
server:
  http_port: 8888
  metrics_port: 9999
  read_timeout: 60s
  api_keys:
    - key-one
    - key-two
  rate_limit_rps: 50

guardrails:
  parallel: true
  max_parallel: 4
  max_text_length: 5000
  max_guardrails: 10

log:
  level: "debug"
  format: "console"

jwt:
  enabled: true
  secret: "test-secret"
  issuer: "guardgate-test"
`
	err := os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	// 加载配置
	cfg, err := NewLoader().
		WithConfigPath(configPath).
		Load()
	require.NoError(t, err)

	// 验证 YAML 值覆盖了默认值
	assert.Equal(t, 8888, cfg.Server.HTTPPort)
	assert.Equal(t, 9999, cfg.Server.MetricsPort)
	assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Server.APIKeys)
	assert.Equal(t, 50.0, cfg.Server.RateLimitRPS)

	assert.True(t, cfg.Guardrails.Parallel)
	assert.Equal(t, 4, cfg.Guardrails.MaxParallel)
	assert.Equal(t, 5000, cfg.Guardrails.MaxTextLength)
	assert.Equal(t, 10, cfg.Guardrails.MaxGuardrails)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.True(t, cfg.JWT.Enabled)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, "guardgate-test", cfg.JWT.Issuer)
}

func TestLoader_LoadFromEnv(t *testing.T) {
	t.Setenv("GUARDGATE_SERVER_HTTP_PORT", "7777")
	t.Setenv("GUARDGATE_SERVER_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("GUARDGATE_GUARDRAILS_PARALLEL", "true")
	t.Setenv("GUARDGATE_GUARDRAILS_MAX_PARALLEL", "16")
	t.Setenv("GUARDGATE_SERVER_READ_TIMEOUT", "45s")
	t.Setenv("GUARDGATE_TELEMETRY_SAMPLE_RATE", "0.25")
	t.Setenv("GUARDGATE_LOG_LEVEL", "warn")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Guardrails.Parallel)
	assert.Equal(t, 16, cfg.Guardrails.MaxParallel)
	assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 0.25, cfg.Telemetry.SampleRate)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_EnvOverridesYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  http_port: 8888\n"), 0644))

	t.Setenv("GUARDGATE_SERVER_HTTP_PORT", "6666")

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)
	assert.Equal(t, 6666, cfg.Server.HTTPPort)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().WithConfigPath("/nonexistent/config.yaml").Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
}

func TestLoader_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [not a map"), 0644))

	_, err := NewLoader().WithConfigPath(configPath).Load()
	require.Error(t, err)
}

func TestLoader_WithValidator(t *testing.T) {
	_, err := NewLoader().
		WithValidator(func(c *Config) error { return c.Validate() }).
		Load()
	require.NoError(t, err)
}

// --- Validate 测试 ---

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad http port",
			mutate:  func(c *Config) { c.Server.HTTPPort = 0 },
			wantErr: "invalid HTTP port",
		},
		{
			name:    "metrics port collides",
			mutate:  func(c *Config) { c.Server.MetricsPort = c.Server.HTTPPort },
			wantErr: "metrics port",
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *Config) { c.Server.RateLimitRPS = -1 },
			wantErr: "rate_limit_rps",
		},
		{
			name:    "zero max_parallel",
			mutate:  func(c *Config) { c.Guardrails.MaxParallel = 0 },
			wantErr: "max_parallel",
		},
		{
			name:    "zero max_text_length",
			mutate:  func(c *Config) { c.Guardrails.MaxTextLength = 0 },
			wantErr: "max_text_length",
		},
		{
			name:    "sample rate out of range",
			mutate:  func(c *Config) { c.Telemetry.SampleRate = 1.5 },
			wantErr: "sample_rate",
		},
		{
			name:    "jwt enabled without secret",
			mutate:  func(c *Config) { c.JWT.Enabled = true },
			wantErr: "jwt secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
