package repository

import (
	"errors"

	"github.com/safedocs/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

type TemplateRepository interface {
	GetByKind(kind string) (*model.SafetyTemplate, error)
	List() ([]model.SafetyTemplate, error)
	Create(tpl *model.SafetyTemplate) error
	Save(tpl *model.SafetyTemplate) error
}

type SubmissionRepository interface {
	Create(sub *model.Submission) error
	Get(id uint) (*model.Submission, error)
	GetByRef(ref string) (*model.Submission, error)
	List() ([]model.Submission, error)
	ListByKind(kind string) ([]model.Submission, error)
	Save(sub *model.Submission) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type RosterRepository interface {
	Jobs() ([]model.Job, error)
	People() ([]model.Person, error)
	Person(id uint) (*model.Person, error)
	Locations() ([]model.Location, error)
	Categories() ([]model.Category, error)
}

type AttachmentRepository interface {
	Create(att *model.Attachment) error
	Save(att *model.Attachment) error
	GetByRef(ref string) (*model.Attachment, error)
	GetBySubmission(submissionID uint) ([]model.Attachment, error)
}

type AuditRepository interface {
	Create(entry *model.AuditLog) error
	GetBySubmission(submissionID uint) ([]model.AuditLog, error)
}
