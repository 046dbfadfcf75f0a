package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplateKind 枚举之外的模板类型
var ErrUnknownTemplateKind = errors.New("unknown template kind")

// fieldCatalog 启动时构建一次，之后只读
var fieldCatalog = map[TemplateKind][]FieldDefinition{
	KindToolboxMeeting:        toolboxMeetingFields(),
	KindSurveillanceChecklist: surveillanceChecklistFields(),
	KindWorkAtHeightPermit:    workAtHeightFields(),
	KindPermitToWork:          permitToWorkFields(),
}

// FieldsFor 返回指定模板类型的有序字段列表
// 消费方按此顺序渲染字段，顺序与数量是契约的一部分。
// KindUnknown 按设计返回空列表而非错误：未识别的文档不暴露任何可填字段。
func FieldsFor(kind TemplateKind) ([]FieldDefinition, error) {
	if kind == KindUnknown {
		return nil, nil
	}
	fields, ok := fieldCatalog[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplateKind, kind)
	}
	return fields, nil
}

// FieldByKey 在字段列表中按键查找
func FieldByKey(fields []FieldDefinition, key string) (FieldDefinition, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// scalar 构造一个标量字段定义
func scalar(key, label string, vt ValueType, required bool, anchor, stop string) FieldDefinition {
	return FieldDefinition{
		Key:      key,
		Label:    label,
		Type:     vt,
		Required: required,
		Pattern:  Pattern{Anchor: anchor, Stop: stop},
	}
}

// selectField 构造一个单选字段定义
func selectField(key, label string, required bool, anchor, stop string, options []string) FieldDefinition {
	f := scalar(key, label, ValueSelect, required, anchor, stop)
	f.Options = options
	return f
}

// checkboxRows 按编号模板批量构造复选框字段
// tagFormat 形如 "S%d."，编号从 1 开始，与模板文本中的行号锚点一一对应
func checkboxRows(keyFormat, tagFormat string, labels []string) []FieldDefinition {
	fields := make([]FieldDefinition, 0, len(labels))
	for i, label := range labels {
		fields = append(fields, FieldDefinition{
			Key:     fmt.Sprintf(keyFormat, i+1),
			Label:   label,
			Type:    ValueCheckbox,
			Pattern: Pattern{Anchor: fmt.Sprintf(tagFormat, i+1)},
		})
	}
	return fields
}

// personRows 按编号模板批量构造人员行字段
func personRows(keyFormat, labelFormat, tagFormat string, count int) []FieldDefinition {
	fields := make([]FieldDefinition, 0, count)
	for i := 1; i <= count; i++ {
		fields = append(fields, FieldDefinition{
			Key:     fmt.Sprintf(keyFormat, i),
			Label:   fmt.Sprintf(labelFormat, i),
			Type:    ValuePersonRow,
			Pattern: Pattern{Anchor: fmt.Sprintf(tagFormat, i)},
		})
	}
	return fields
}
