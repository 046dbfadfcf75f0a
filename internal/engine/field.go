package engine

// ValueType 字段值类型
type ValueType string

const (
	ValueText      ValueType = "short-text"
	ValueDate      ValueType = "date"
	ValueTime      ValueType = "time"
	ValueSelect    ValueType = "single-select"
	ValueCheckbox  ValueType = "boolean-checkbox"
	ValueSignature ValueType = "signature-image"
	ValueImage     ValueType = "uploaded-image"
	ValuePersonRow ValueType = "linked-person-row"
)

// Pattern 定位规则
// Anchor 为标签锚点（标签文本+分隔符的字面量），定位时在全文中查找；
// Stop 为同一行内的终止锚点（通常是同行下一个字段的标签），为空表示到行尾。
// 复选框/签名/图片类型只使用 Anchor，占位符在锚点之后、行尾之前查找。
type Pattern struct {
	Anchor string
	Stop   string
}

// FieldDefinition 描述一个可填写槽位
// 进程启动时由 Registry 一次性创建，之后不再修改
type FieldDefinition struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Type     ValueType `json:"value_type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"` // 仅 single-select 存在
	Pattern  Pattern   `json:"-"`
}

// ValueMap 字段键到当前值的扁平映射，即持久化与回填的数据形态
// checkbox 存 "true"/"false"，签名/图片存附件引用串，person-row 存人员标识，
// 其派生条目（_name/_ident/_company）与行键共享前缀
type ValueMap map[string]string

// Clone 返回值表的浅拷贝
func (v ValueMap) Clone() ValueMap {
	out := make(ValueMap, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Person 人员选择的展开来源（名单数据由外部协作方提供，引擎只读）
type Person struct {
	Name    string `json:"name"`
	Ident   string `json:"ident"`
	Company string `json:"company"`
}

// 人员行派生键后缀
const (
	personNameSuffix    = "_name"
	personIdentSuffix   = "_ident"
	personCompanySuffix = "_company"
)
