// Package templates 内置的四种模板原文
// 模板正文随二进制嵌入，首次启动时由 TemplateService 落库作为系统预置模板
package templates

import (
	"embed"
	"fmt"

	"github.com/safedocs/backend/internal/engine"
)

//go:embed *.txt
var builtin embed.FS

var filenames = map[engine.TemplateKind]string{
	engine.KindToolboxMeeting:        "toolbox_meeting.txt",
	engine.KindSurveillanceChecklist: "surveillance_checklist.txt",
	engine.KindWorkAtHeightPermit:    "work_at_height_permit.txt",
	engine.KindPermitToWork:          "permit_to_work.txt",
}

// Body 返回指定模板类型的内置原文
func Body(kind engine.TemplateKind) (string, error) {
	name, ok := filenames[kind]
	if !ok {
		return "", fmt.Errorf("no builtin template for kind %s", kind)
	}
	data, err := builtin.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read builtin template %s: %w", name, err)
	}
	return string(data), nil
}

// All 返回全部内置模板，按分类优先级顺序
func All() map[engine.TemplateKind]string {
	out := make(map[engine.TemplateKind]string, len(filenames))
	for _, kind := range engine.KnownKinds() {
		body, err := Body(kind)
		if err != nil {
			continue
		}
		out[kind] = body
	}
	return out
}
