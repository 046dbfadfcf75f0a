package model

import (
	"time"
)

// SafetyTemplate 模板原文
// Kind 对应引擎的模板类型枚举；系统预置模板首次启动时落库
type SafetyTemplate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Kind      string    `json:"kind" gorm:"size:64;uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Body      string    `json:"body" gorm:"type:text"`
	Version   int       `json:"version" gorm:"default:1"`
	IsSystem  bool      `json:"is_system" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Submission 一次填报
// DocumentText + ValueMap 即规范持久化形态，会话按这对数据无损重建
type Submission struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Ref          string    `json:"ref" gorm:"size:64;uniqueIndex;not null"` // UUID
	Kind         string    `json:"kind" gorm:"size:64;index;not null"`
	Title        string    `json:"title" gorm:"size:255"`
	DocumentText string    `json:"document_text" gorm:"type:text"`
	ValueMap     string    `json:"value_map" gorm:"type:text"`               // JSON object
	Status       string    `json:"status" gorm:"size:50;default:draft"`      // draft, submitted, approved, rejected, archived
	JobID        *uint     `json:"job_id" gorm:"index"`
	LocationID   *uint     `json:"location_id" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Attachment 签名/照片附件与导出产物
type Attachment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Ref          string    `json:"ref" gorm:"size:128;uniqueIndex;not null"`
	SubmissionID *uint     `json:"submission_id" gorm:"index"`
	Kind         string    `json:"kind" gorm:"size:32"` // signature, photo, export
	Path         string    `json:"path" gorm:"size:500"`
	MimeType     string    `json:"mime_type" gorm:"size:100"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuditLog 审计流水，由事件订阅方写入
type AuditLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SubmissionID uint      `json:"submission_id" gorm:"index"`
	Action       string    `json:"action" gorm:"size:64;not null"`
	Detail       string    `json:"detail" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}

// Category 作业类别
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
