package guardrails

import (
	"context"
	"fmt"
	"strings"
)

// GibberishTextValidator 乱码文本验证器
// 基于词形启发式评分，乱码占比达到阈值即验证失败
type GibberishTextValidator struct {
	threshold float64
	method    ValidationMethod
}

// NewGibberishTextValidator 从护栏配置构造乱码文本验证器
// 可选参数 threshold（默认 0.5）与 validation_method（默认 sentence）
func NewGibberishTextValidator(config map[string]any) (*GibberishTextValidator, error) {
	threshold, err := optionalFloatParam(config, "threshold", 0.5)
	if err != nil {
		return nil, err
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("parameter \"threshold\" must be between 0 and 1")
	}

	methodStr, err := optionalStringParam(config, "validation_method", string(ValidationMethodSentence))
	if err != nil {
		return nil, err
	}
	method, err := parseValidationMethod(methodStr)
	if err != nil {
		return nil, err
	}

	return &GibberishTextValidator{
		threshold: threshold,
		method:    method,
	}, nil
}

// Name 返回验证器名称
func (v *GibberishTextValidator) Name() string {
	return "GibberishText"
}

// Validate 执行乱码检测
func (v *GibberishTextValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	if v.method == ValidationMethodFull {
		score := gibberishScore(text)
		result.Metadata["score"] = score
		if score >= v.threshold {
			result.Fail(fmt.Sprintf("the text appears to be gibberish (score %.2f, threshold %.2f)",
				score, v.threshold))
		}
		return result, nil
	}

	var gibberish []string
	maxScore := 0.0
	for _, sentence := range splitSentences(text) {
		score := gibberishScore(sentence)
		if score > maxScore {
			maxScore = score
		}
		if score >= v.threshold {
			gibberish = append(gibberish, sentence)
		}
	}

	result.Metadata["score"] = maxScore
	if len(gibberish) > 0 {
		result.Fail(fmt.Sprintf("the following sentences appear to be gibberish: %s",
			strings.Join(gibberish, "; ")))
		result.Metadata["gibberish_sentences"] = gibberish
	}

	return result, nil
}

// gibberishScore 计算乱码得分：判为乱码的词占全部词的比例
func gibberishScore(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	gibberish := 0
	for _, w := range words {
		if isGibberishWord(w) {
			gibberish++
		}
	}

	return float64(gibberish) / float64(len(words))
}

// isGibberishWord 判断单个词是否呈现乱码特征
// 特征包括：较长却无元音、过长的辅音连串、同字符长连续、字母数字混杂
func isGibberishWord(word string) bool {
	cleaned := strings.ToLower(strings.Trim(word, `.,;:!?"'()[]{}`))
	if len(cleaned) <= 3 {
		return false
	}

	letters := 0
	digits := 0
	vowels := 0
	consonantRun := 0
	maxConsonantRun := 0
	repeatRun := 1
	maxRepeatRun := 1
	var prev rune

	for _, r := range cleaned {
		switch {
		case r >= 'a' && r <= 'z':
			letters++
			if strings.ContainsRune("aeiouy", r) {
				vowels++
				consonantRun = 0
			} else {
				consonantRun++
				if consonantRun > maxConsonantRun {
					maxConsonantRun = consonantRun
				}
			}
		case r >= '0' && r <= '9':
			digits++
			consonantRun = 0
		default:
			consonantRun = 0
		}

		if r == prev {
			repeatRun++
			if repeatRun > maxRepeatRun {
				maxRepeatRun = repeatRun
			}
		} else {
			repeatRun = 1
		}
		prev = r
	}

	if letters == 0 {
		return false
	}
	if vowels == 0 && letters > 3 {
		return true
	}
	if maxConsonantRun >= 5 {
		return true
	}
	if maxRepeatRun >= 4 {
		return true
	}
	if digits > 0 && letters > 0 && digits >= letters {
		return true
	}
	return false
}
