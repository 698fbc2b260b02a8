package guardrails

import (
	"encoding/json"
	"fmt"
	"math"
)

// =============================================================================
// 🔧 配置参数解析辅助函数
// =============================================================================
// 护栏配置来自 JSON 请求体，数值统一以 float64 形式到达，
// 这里提供带类型检查的取值函数，错误消息指向具体参数名。

// stringParam 读取字符串参数
func stringParam(config map[string]any, key string) (string, error) {
	v, ok := config[key]
	if !ok {
		return "", fmt.Errorf("missing required parameter %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return s, nil
}

// optionalStringParam 读取可选字符串参数，缺失时返回默认值
func optionalStringParam(config map[string]any, key, defaultValue string) (string, error) {
	if _, ok := config[key]; !ok {
		return defaultValue, nil
	}
	return stringParam(config, key)
}

// floatParam 读取数值参数（接受 JSON 数字的所有 Go 表示）
func floatParam(config map[string]any, key string) (float64, error) {
	v, ok := config[key]
	if !ok {
		return 0, fmt.Errorf("missing required parameter %q", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("parameter %q must be a number", key)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
}

// optionalFloatParam 读取可选数值参数，缺失时返回默认值
func optionalFloatParam(config map[string]any, key string, defaultValue float64) (float64, error) {
	if _, ok := config[key]; !ok {
		return defaultValue, nil
	}
	return floatParam(config, key)
}

// intParam 读取整数参数，拒绝带小数部分的值
func intParam(config map[string]any, key string) (int, error) {
	f, err := floatParam(config, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("parameter %q must be an integer", key)
	}
	return int(f), nil
}

// stringSliceParam 读取字符串列表参数
func stringSliceParam(config map[string]any, key string) ([]string, error) {
	v, ok := config[key]
	if !ok {
		return nil, fmt.Errorf("missing required parameter %q", key)
	}
	switch list := v.(type) {
	case []string:
		result := make([]string, len(list))
		copy(result, list)
		return result, nil
	case []any:
		result := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("parameter %q must be a list of strings", key)
			}
			result = append(result, s)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("parameter %q must be a list of strings", key)
	}
}

// optionalStringSliceParam 读取可选字符串列表参数，缺失时返回 nil
func optionalStringSliceParam(config map[string]any, key string) ([]string, error) {
	if _, ok := config[key]; !ok {
		return nil, nil
	}
	return stringSliceParam(config, key)
}
