package guardrails

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// ValidationMethod 文本切分方式
type ValidationMethod string

const (
	// ValidationMethodSentence 按句子逐句评分
	ValidationMethodSentence ValidationMethod = "sentence"
	// ValidationMethodFull 对全文整体评分
	ValidationMethodFull ValidationMethod = "full"
)

// parseValidationMethod 校验 validation_method 取值
func parseValidationMethod(value string) (ValidationMethod, error) {
	method := ValidationMethod(value)
	switch method {
	case ValidationMethodSentence, ValidationMethodFull:
		return method, nil
	default:
		return "", fmt.Errorf("parameter \"validation_method\" must be %q or %q",
			ValidationMethodSentence, ValidationMethodFull)
	}
}

// sentenceSplitPattern 句子切分边界
var sentenceSplitPattern = regexp.MustCompile(`[.!?\n]+`)

// splitSentences 将文本切分为非空句子
func splitSentences(text string) []string {
	parts := sentenceSplitPattern.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// toxicLexicon 毒性词表与权重
// 强侮辱与威胁类词汇权重为 1，贬损类词汇权重为 0.5
var toxicLexicon = map[string]float64{
	"hate":       1.0,
	"kill":       1.0,
	"murder":     1.0,
	"die":        1.0,
	"stupid":     1.0,
	"idiot":      1.0,
	"idiots":     1.0,
	"moron":      1.0,
	"morons":     1.0,
	"dumb":       1.0,
	"loser":      1.0,
	"losers":     1.0,
	"trash":      0.5,
	"garbage":    0.5,
	"worthless":  1.0,
	"pathetic":   0.5,
	"disgusting": 0.5,
	"ugly":       0.5,
	"shut":       0.5, // "shut up" 的组成部分
	"damn":       0.5,
	"hell":       0.5,
	"freak":      0.5,
	"scum":       1.0,
	"vermin":     1.0,
	"awful":      0.5,
	"horrible":   0.5,
	"terrible":   0.5,
}

// wordPattern 用于抽取评分用的词元
var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// toxicityScore 计算一段文本的毒性得分，范围 [0, 1]
// 得分为毒性词权重之和相对词元总数的放大比值，无词元时为 0
func toxicityScore(text string) float64 {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return 0
	}

	var weight float64
	for _, w := range words {
		if v, ok := toxicLexicon[w]; ok {
			weight += v
		}
	}

	// 放大系数让短句中的单个强毒性词也能越过常用阈值
	score := weight * 4 / float64(len(words))
	if score > 1 {
		return 1
	}
	return score
}

// ToxicLanguageValidator 毒性语言验证器
// 基于词表启发式评分，得分达到阈值即验证失败
type ToxicLanguageValidator struct {
	threshold float64
	method    ValidationMethod
}

// NewToxicLanguageValidator 从护栏配置构造毒性语言验证器
// 必需参数 threshold（[0,1]）与 validation_method（sentence 或 full）
func NewToxicLanguageValidator(config map[string]any) (*ToxicLanguageValidator, error) {
	threshold, err := floatParam(config, "threshold")
	if err != nil {
		return nil, err
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("parameter \"threshold\" must be between 0 and 1")
	}

	methodStr, err := stringParam(config, "validation_method")
	if err != nil {
		return nil, err
	}
	method, err := parseValidationMethod(methodStr)
	if err != nil {
		return nil, err
	}

	return &ToxicLanguageValidator{
		threshold: threshold,
		method:    method,
	}, nil
}

// Name 返回验证器名称
func (v *ToxicLanguageValidator) Name() string {
	return "ToxicLanguage"
}

// Validate 执行毒性语言检测
func (v *ToxicLanguageValidator) Validate(ctx context.Context, text string) (*Result, error) {
	result := NewResult()

	if v.method == ValidationMethodFull {
		score := toxicityScore(text)
		result.Metadata["score"] = score
		if score >= v.threshold {
			result.Fail(fmt.Sprintf("the text contains toxic language (score %.2f, threshold %.2f)",
				score, v.threshold))
		}
		return result, nil
	}

	// 逐句评分，汇总所有超阈值句子
	var toxic []string
	maxScore := 0.0
	for _, sentence := range splitSentences(text) {
		score := toxicityScore(sentence)
		if score > maxScore {
			maxScore = score
		}
		if score >= v.threshold {
			toxic = append(toxic, sentence)
		}
	}

	result.Metadata["score"] = maxScore
	if len(toxic) > 0 {
		result.Fail(fmt.Sprintf("the following sentences contain toxic language: %s",
			strings.Join(toxic, "; ")))
		result.Metadata["toxic_sentences"] = toxic
	}

	return result, nil
}

// Score 返回全文毒性得分
func (v *ToxicLanguageValidator) Score(text string) float64 {
	return toxicityScore(text)
}
