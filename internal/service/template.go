package service

import (
	"errors"
	"fmt"

	"github.com/safedocs/backend/internal/engine"
	"github.com/safedocs/backend/internal/model"
	"github.com/safedocs/backend/internal/repository"
)

var ErrTemplateNotFound = errors.New("template not found")

// TemplateDTO 模板数据传输对象
type TemplateDTO struct {
	ID       uint   `json:"id"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Version  int    `json:"version"`
	IsSystem bool   `json:"is_system"`
}

// TemplateDetailDTO 模板详情（含原文和字段目录）
type TemplateDetailDTO struct {
	TemplateDTO
	Body   string                   `json:"body"`
	Fields []engine.FieldDefinition `json:"fields"`
}

type TemplateService struct {
	templateRepo repository.TemplateRepository
}

func NewTemplateService(templateRepo repository.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// List 获取模板列表
func (s *TemplateService) List() ([]TemplateDTO, error) {
	templates, err := s.templateRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	result := make([]TemplateDTO, len(templates))
	for i, t := range templates {
		result[i] = toTemplateDTO(&t)
	}
	return result, nil
}

// GetByKind 获取模板详情
// 字段目录由引擎的注册表给出，不落库
func (s *TemplateService) GetByKind(kind string) (*TemplateDetailDTO, error) {
	tpl, err := s.templateRepo.GetByKind(kind)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	fields, err := engine.FieldsFor(engine.TemplateKind(tpl.Kind))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve field catalog: %w", err)
	}

	return &TemplateDetailDTO{
		TemplateDTO: toTemplateDTO(tpl),
		Body:        tpl.Body,
		Fields:      fields,
	}, nil
}

func toTemplateDTO(t *model.SafetyTemplate) TemplateDTO {
	return TemplateDTO{
		ID:       t.ID,
		Kind:     t.Kind,
		Name:     t.Name,
		Version:  t.Version,
		IsSystem: t.IsSystem,
	}
}
