package repository

import (
	"errors"

	"github.com/safedocs/backend/internal/model"
	"gorm.io/gorm"
)

type attachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(att *model.Attachment) error {
	return r.db.Create(att).Error
}

func (r *attachmentRepository) Save(att *model.Attachment) error {
	return r.db.Save(att).Error
}

func (r *attachmentRepository) GetByRef(ref string) (*model.Attachment, error) {
	var att model.Attachment
	err := r.db.Where("ref = ?", ref).First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attachmentRepository) GetBySubmission(submissionID uint) ([]model.Attachment, error) {
	var atts []model.Attachment
	err := r.db.Where("submission_id = ?", submissionID).Order("id").Find(&atts).Error
	return atts, err
}
