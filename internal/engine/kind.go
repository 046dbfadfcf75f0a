package engine

import "strings"

// TemplateKind 文档模板类型
// 分类一旦成功即固定，编辑过程中不再变化
type TemplateKind string

const (
	KindToolboxMeeting         TemplateKind = "TOOLBOX_MEETING"
	KindSurveillanceChecklist  TemplateKind = "VIDEO_SURVEILLANCE_CHECKLIST"
	KindWorkAtHeightPermit     TemplateKind = "WORK_AT_HEIGHT_PERMIT"
	KindPermitToWork           TemplateKind = "PERMIT_TO_WORK"
	KindUnknown                TemplateKind = "UNKNOWN"
)

// KnownKinds 返回全部可分类的模板类型（不含 UNKNOWN），顺序即分类优先级
func KnownKinds() []TemplateKind {
	return []TemplateKind{
		KindToolboxMeeting,
		KindSurveillanceChecklist,
		KindWorkAtHeightPermit,
		KindPermitToWork,
	}
}

// Classifier 模板分类器接口
// 隔离分类策略，后续可替换为标记驱动的实现而不影响 Binder/Registry
type Classifier interface {
	Classify(text string) TemplateKind
}

// keywordClassifier 关键词优先级分类器
// 按固定顺序匹配各类型的特征短语，先命中者胜出。
// 注意顺序敏感：WORK_AT_HEIGHT 必须先于 PERMIT_TO_WORK 检查，
// 高处作业许可证正文中同样包含 "permit to work" 短语。
type keywordClassifier struct {
	rules []keywordRule
}

type keywordRule struct {
	phrase string
	kind   TemplateKind
}

// NewClassifier 创建默认的关键词分类器
func NewClassifier() Classifier {
	return &keywordClassifier{
		rules: []keywordRule{
			{"toolbox meeting", KindToolboxMeeting},
			{"video surveillance", KindSurveillanceChecklist},
			{"work at height", KindWorkAtHeightPermit},
			{"permit to work", KindPermitToWork},
		},
	}
}

func (c *keywordClassifier) Classify(text string) TemplateKind {
	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		if strings.Contains(lowered, rule.phrase) {
			return rule.kind
		}
	}
	return KindUnknown
}

// Classify 包级便捷入口，使用默认分类器
func Classify(text string) TemplateKind {
	return defaultClassifier.Classify(text)
}

var defaultClassifier = NewClassifier()
