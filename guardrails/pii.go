package guardrails

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// PIIEntity PII 实体类型，命名与常见实体识别器保持一致
type PIIEntity string

const (
	// PIIEntityEmail 邮箱地址
	PIIEntityEmail PIIEntity = "EMAIL_ADDRESS"
	// PIIEntityPhone 电话号码
	PIIEntityPhone PIIEntity = "PHONE_NUMBER"
	// PIIEntityCreditCard 银行卡号
	PIIEntityCreditCard PIIEntity = "CREDIT_CARD"
	// PIIEntityIPAddress IP 地址
	PIIEntityIPAddress PIIEntity = "IP_ADDRESS"
	// PIIEntitySSN 美国社会保障号
	PIIEntitySSN PIIEntity = "US_SSN"
)

// piiPatterns 各实体类型的识别正则
var piiPatterns = map[PIIEntity]*regexp.Regexp{
	PIIEntityEmail:      regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	PIIEntityPhone:      regexp.MustCompile(`\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b`),
	PIIEntityCreditCard: regexp.MustCompile(`\b(?:\d[ -]?){13,19}\b`),
	PIIEntityIPAddress:  regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
	PIIEntitySSN:        regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
}

// defaultPIIEntities 未指定 pii_entities 时启用的全部实体
var defaultPIIEntities = []PIIEntity{
	PIIEntityEmail,
	PIIEntityPhone,
	PIIEntityCreditCard,
	PIIEntityIPAddress,
	PIIEntitySSN,
}

// DetectPIIValidator PII 检测验证器
// 文本中出现任一启用实体即验证失败
type DetectPIIValidator struct {
	entities []PIIEntity
}

// NewDetectPIIValidator 从护栏配置构造 PII 检测验证器
// 可选参数 pii_entities 限定检测的实体类型，缺省检测全部
func NewDetectPIIValidator(config map[string]any) (*DetectPIIValidator, error) {
	names, err := optionalStringSliceParam(config, "pii_entities")
	if err != nil {
		return nil, err
	}

	entities := defaultPIIEntities
	if len(names) > 0 {
		entities = make([]PIIEntity, 0, len(names))
		for _, name := range names {
			entity := PIIEntity(name)
			if _, ok := piiPatterns[entity]; !ok {
				return nil, fmt.Errorf("unknown PII entity %q", name)
			}
			entities = append(entities, entity)
		}
	}

	return &DetectPIIValidator{entities: entities}, nil
}

// Name 返回验证器名称
func (v *DetectPIIValidator) Name() string {
	return "DetectPII"
}

// Validate 执行 PII 检测
func (v *DetectPIIValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	detected := v.Detect(text)
	if len(detected) == 0 {
		return result, nil
	}

	names := make([]string, 0, len(detected))
	for _, e := range detected {
		names = append(names, string(e))
	}

	result.Fail(fmt.Sprintf("the following PII was detected in the text: %s", strings.Join(names, ", ")))
	result.Metadata["pii_entities"] = names
	return result, nil
}

// Detect 返回文本中命中的实体类型（按名称排序，去重）
func (v *DetectPIIValidator) Detect(text string) []PIIEntity {
	found := make(map[PIIEntity]bool)

	for _, entity := range v.entities {
		pattern := piiPatterns[entity]
		matches := pattern.FindAllString(text, -1)
		for _, match := range matches {
			// 卡号正则过于宽泛，用 Luhn 校验过滤误报
			if entity == PIIEntityCreditCard && !luhnValid(match) {
				continue
			}
			found[entity] = true
			break
		}
	}

	result := make([]PIIEntity, 0, len(found))
	for entity := range found {
		result = append(result, entity)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// luhnValid 对去除分隔符后的数字串执行 Luhn 校验
func luhnValid(value string) bool {
	var digits []int
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) < 13 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
