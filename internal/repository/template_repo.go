package repository

import (
	"errors"

	"github.com/safedocs/backend/internal/model"
	"gorm.io/gorm"
)

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) GetByKind(kind string) (*model.SafetyTemplate, error) {
	var tpl model.SafetyTemplate
	err := r.db.Where("kind = ?", kind).First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *templateRepository) List() ([]model.SafetyTemplate, error) {
	var tpls []model.SafetyTemplate
	err := r.db.Order("id").Find(&tpls).Error
	return tpls, err
}

func (r *templateRepository) Create(tpl *model.SafetyTemplate) error {
	return r.db.Create(tpl).Error
}

func (r *templateRepository) Save(tpl *model.SafetyTemplate) error {
	return r.db.Save(tpl).Error
}
