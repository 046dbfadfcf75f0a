package engine

import "fmt"

// Diagnostic 一条未满足必填要求的诊断
type Diagnostic struct {
	FieldKey string `json:"field_key"`
	Reason   string `json:"reason"`
}

// Validate 从字段表与值表推导完整性报告
// 纯函数：必填字段的条目缺失、为空串或为 "false" 时报告缺失。
// 按既定策略只做存在性校验，不做日期等格式校验。
func Validate(fields []FieldDefinition, values ValueMap) []Diagnostic {
	var report []Diagnostic
	for _, field := range fields {
		if !field.Required {
			continue
		}
		value, ok := values[field.Key]
		if !ok || value == "" || (field.Type == ValueCheckbox && value == "false") {
			report = append(report, Diagnostic{
				FieldKey: field.Key,
				Reason:   fmt.Sprintf("required field %q is not filled", field.Label),
			})
		}
	}
	return report
}
