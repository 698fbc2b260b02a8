package guardrails

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// secretPattern 单类机密凭据的识别规则
type secretPattern struct {
	name    string
	pattern *regexp.Regexp
}

// secretPatterns 机密凭据识别规则集
// 覆盖主流云厂商与平台的密钥格式，以及通用的密钥赋值形式
var secretPatterns = []secretPattern{
	{"aws_access_key", regexp.MustCompile(`\b(?:AKIA|ASIA)[0-9A-Z]{16}\b`)},
	{"aws_secret_key", regexp.MustCompile(`(?i)aws.{0,20}['"][0-9a-zA-Z/+]{40}['"]`)},
	{"github_token", regexp.MustCompile(`\b(?:ghp|gho|ghu|ghs|ghr)_[0-9A-Za-z]{36}\b`)},
	{"slack_token", regexp.MustCompile(`\bxox[baprs]-[0-9A-Za-z-]{10,}\b`)},
	{"private_key", regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY(?: BLOCK)?-----`)},
	{"bearer_token", regexp.MustCompile(`(?i)\bbearer\s+[0-9a-z._=-]{20,}`)},
	{"generic_api_key", regexp.MustCompile(`(?i)\b(?:api[_-]?key|apikey|secret|token|password|passwd)\b\s*[:=]\s*['"][^'"\s]{8,}['"]`)},
}

// SecretsPresentValidator 机密凭据检测验证器
// 文本包含任一已知格式的密钥或凭据即验证失败
type SecretsPresentValidator struct{}

// NewSecretsPresentValidator 构造机密凭据检测验证器，无配置参数
func NewSecretsPresentValidator(config map[string]any) (*SecretsPresentValidator, error) {
	return &SecretsPresentValidator{}, nil
}

// Name 返回验证器名称
func (v *SecretsPresentValidator) Name() string {
	return "SecretsPresent"
}

// Validate 执行机密凭据检测
func (v *SecretsPresentValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	found := v.Detect(text)
	if len(found) == 0 {
		return result, nil
	}

	result.Fail(fmt.Sprintf("secrets detected in the text: %s", strings.Join(found, ", ")))
	result.Metadata["secret_types"] = found
	return result, nil
}

// Detect 返回文本中命中的机密凭据类型
func (v *SecretsPresentValidator) Detect(text string) []string {
	var found []string
	for _, sp := range secretPatterns {
		if sp.pattern.MatchString(text) {
			found = append(found, sp.name)
		}
	}
	return found
}
