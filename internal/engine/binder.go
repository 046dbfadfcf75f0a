package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"k8s.io/klog/v2"
)

var (
	// ErrUnknownField 字段键不属于当前模板类型
	ErrUnknownField = errors.New("field not defined for this template kind")
	// ErrPersonRowField 人员行字段必须通过 BindPerson 绑定
	ErrPersonRowField = errors.New("linked-person-row field requires BindPerson")
	// ErrCheckboxValue 复选框字段只接受布尔输入
	ErrCheckboxValue = errors.New("checkbox field requires a boolean value")
)

// Session 一次编辑会话，独占持有文档文本与值表
// 引擎本身单线程协作式运行，宿主层负责保证同一会话只有一个写入者
type Session struct {
	kind     TemplateKind
	fields   []FieldDefinition
	original string
	text     string
	values   ValueMap
}

// NewSession 从空白模板文本创建新会话
// 分类一次后固定；未识别的文本得到空字段表的会话，而不是错误
func NewSession(templateText string) (*Session, error) {
	kind := Classify(templateText)
	fields, err := FieldsFor(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve field schema: %w", err)
	}
	return &Session{
		kind:     kind,
		fields:   fields,
		original: templateText,
		text:     templateText,
		values:   make(ValueMap),
	}, nil
}

// OpenSession 从持久化的 {documentText, valueMap} 对恢复会话
// 文本按原样加载，并成为本次会话的 original 快照；值表逐项拷贝，无损重建
func OpenSession(documentText string, values ValueMap) (*Session, error) {
	s, err := NewSession(documentText)
	if err != nil {
		return nil, err
	}
	if values != nil {
		s.values = values.Clone()
	}
	return s, nil
}

func (s *Session) Kind() TemplateKind        { return s.kind }
func (s *Session) Fields() []FieldDefinition { return s.fields }
func (s *Session) Text() string              { return s.text }
func (s *Session) Original() string          { return s.original }

// Values 返回值表的拷贝，持久化时直接序列化
func (s *Session) Values() ValueMap { return s.values.Clone() }

// Field 按键查找当前会话的字段定义
func (s *Session) Field(key string) (FieldDefinition, bool) {
	return FieldByKey(s.fields, key)
}

// Bind 把一个字段值写入文档文本与值表
// 定位失败按显式空操作处理：文本不动，值表仍然更新，数据不会静默丢失。
// 保证幂等：同一字段同一值绑定两次，文本逐字节一致。
func (s *Session) Bind(key, value string) error {
	field, ok := s.Field(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if field.Type == ValuePersonRow {
		return fmt.Errorf("%w: %s", ErrPersonRowField, key)
	}

	stored := value
	if field.Type == ValueCheckbox {
		// 复选框统一归一化存储，空值视为未勾选
		checked, err := parseCheckbox(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrCheckboxValue, key, value)
		}
		stored = strconv.FormatBool(checked)
	}

	s.applyToText(field, renderValue(field, stored))
	s.values[key] = stored
	return nil
}

// BindPerson 绑定人员行：一次选择展开为多个派生值表条目
// 文本中只体现姓名/证件号的展示行，公司等属性仅进入值表
func (s *Session) BindPerson(key string, p Person) error {
	field, ok := s.Field(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if field.Type != ValuePersonRow {
		return fmt.Errorf("field %s is not a linked-person-row", key)
	}

	display := personDisplay(p)
	s.applyToText(field, renderValue(field, display))

	s.values[key] = display
	s.values[key+personNameSuffix] = p.Name
	s.values[key+personIdentSuffix] = p.Ident
	s.values[key+personCompanySuffix] = p.Company
	return nil
}

// Validate 完整性校验，只看必填项是否有值
func (s *Session) Validate() []Diagnostic {
	return Validate(s.fields, s.values)
}

// Diff 与 original 快照的逐行对比
func (s *Session) Diff() []DiffLine {
	return DiffLines(s.original, s.text)
}

// applyToText 定位并替换字段区间；未命中时仅记录，不报错
func (s *Session) applyToText(field FieldDefinition, rendered string) {
	span, found := Locate(s.text, field)
	if !found {
		klog.V(6).Infof("字段 %s 在当前文档版式中无槽位，仅更新值表", field.Key)
		return
	}
	s.text = s.text[:span.Start] + rendered + s.text[span.End:]
}

// renderValue 按字段类型渲染要写入文本的内容
func renderValue(field FieldDefinition, value string) string {
	switch field.Type {
	case ValueCheckbox:
		if value == "true" {
			return GlyphChecked
		}
		return GlyphUnchecked
	case ValueSignature:
		if value == "" {
			return SignaturePlaceholder
		}
		return imgMarkerPrefix + field.Label + "|" + value + imgMarkerClose
	case ValueImage:
		if value == "" {
			return PhotoPlaceholder
		}
		return imgMarkerPrefix + field.Label + "|" + value + imgMarkerClose
	default:
		rendered := renderLine(sanitizeValue(field, value))
		if field.Pattern.Stop != "" {
			// 同行后面还有下一个字段的标签，留出分隔
			rendered += "  "
		}
		return rendered
	}
}

// renderLine 标量/人员展示行的统一渲染：空值回落为定宽空白占位
func renderLine(value string) string {
	if value == "" {
		return " " + blankRun
	}
	return " " + value
}

// parseCheckbox 宽松解析复选框输入（true/false/1/0，大小写不限），空串即未勾选
func parseCheckbox(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

// 定位区间以行为界，换行会让值外溢到下一行，写入前折叠为空格
var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitizeValue 清洗要写入文本的标量值：折叠换行，剔除本字段的锚点与终止标记
// 只作用于文本渲染，值表始终保存原始输入；绑定与回放共用这条路径，
// 重定位时区间边界不会落进上一次写入的值里
func sanitizeValue(field FieldDefinition, value string) string {
	value = newlineReplacer.Replace(value)
	if field.Pattern.Anchor != "" {
		value = strings.ReplaceAll(value, field.Pattern.Anchor, "")
	}
	if field.Pattern.Stop != "" {
		value = strings.ReplaceAll(value, field.Pattern.Stop, "")
	}
	return value
}

// personDisplay 人员行的文本展示形式
func personDisplay(p Person) string {
	if p.Name == "" {
		return ""
	}
	if p.Ident == "" {
		return p.Name
	}
	return p.Name + " (" + p.Ident + ")"
}

// Replay 把值表逐字段回放到 original 文本上
// 绑定路径与回放路径使用同一套定位与渲染，因而回放结果与当前文本逐字节一致
func Replay(original string, fields []FieldDefinition, values ValueMap) string {
	text := original
	for _, field := range fields {
		value, ok := values[field.Key]
		if !ok {
			continue
		}
		rendered := renderValue(field, value)
		span, found := Locate(text, field)
		if !found {
			continue
		}
		text = text[:span.Start] + rendered + text[span.End:]
	}
	return text
}
