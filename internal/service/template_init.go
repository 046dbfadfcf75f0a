package service

import (
	"github.com/safedocs/backend/internal/engine"
	"github.com/safedocs/backend/internal/engine/templates"
	"github.com/safedocs/backend/internal/model"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

var templateNames = map[engine.TemplateKind]string{
	engine.KindToolboxMeeting:        "Toolbox Meeting Record",
	engine.KindSurveillanceChecklist: "Video Surveillance Checklist",
	engine.KindWorkAtHeightPermit:    "Permit To Work At Height",
	engine.KindPermitToWork:          "Permit To Work",
}

// InitDefaultTemplates 初始化预置模板数据
// 以内嵌模板原文为准，首次启动落库，已存在的类型跳过
func InitDefaultTemplates(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for kind, body := range templates.All() {
			var count int64
			if err := tx.Model(&model.SafetyTemplate{}).Where("kind = ?", string(kind)).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			tpl := &model.SafetyTemplate{
				Kind:     string(kind),
				Name:     templateNames[kind],
				Body:     body,
				Version:  1,
				IsSystem: true,
			}
			if err := tx.Create(tpl).Error; err != nil {
				return err
			}
			klog.V(6).Infof("预置模板已初始化: kind=%s", kind)
		}
		return nil
	})
}
