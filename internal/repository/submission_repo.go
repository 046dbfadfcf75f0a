package repository

import (
	"errors"

	"github.com/safedocs/backend/internal/model"
	"gorm.io/gorm"
)

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(sub *model.Submission) error {
	return r.db.Create(sub).Error
}

func (r *submissionRepository) Get(id uint) (*model.Submission, error) {
	var sub model.Submission
	err := r.db.First(&sub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepository) GetByRef(ref string) (*model.Submission, error) {
	var sub model.Submission
	err := r.db.Where("ref = ?", ref).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepository) List() ([]model.Submission, error) {
	var subs []model.Submission
	err := r.db.Order("updated_at DESC").Find(&subs).Error
	return subs, err
}

func (r *submissionRepository) ListByKind(kind string) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.db.Where("kind = ?", kind).Order("updated_at DESC").Find(&subs).Error
	return subs, err
}

func (r *submissionRepository) Save(sub *model.Submission) error {
	return r.db.Save(sub).Error
}

func (r *submissionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.Submission{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *submissionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Submission{}, id).Error
}
