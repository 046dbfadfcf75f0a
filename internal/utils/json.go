package utils

import (
	"encoding/json"

	"k8s.io/klog/v2"
)

func ToJSON(v any) string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		klog.Errorf("JSON序列化失败: %v", err)
		return ""
	}
	return string(jsonData)
}

// MapFromJSON 反序列化扁平字符串映射，空串得到空映射
func MapFromJSON(data string) (map[string]string, error) {
	out := make(map[string]string)
	if data == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, err
	}
	return out, nil
}
