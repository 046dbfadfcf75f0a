package repository

import (
	"github.com/safedocs/backend/internal/model"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(entry *model.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditRepository) GetBySubmission(submissionID uint) ([]model.AuditLog, error) {
	var entries []model.AuditLog
	err := r.db.Where("submission_id = ?", submissionID).Order("id").Find(&entries).Error
	return entries, err
}
