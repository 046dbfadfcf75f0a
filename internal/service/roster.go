package service

import (
	"fmt"

	"github.com/safedocs/backend/internal/model"
	"github.com/safedocs/backend/internal/repository"
)

// RosterService 名册的只读服务
// 下拉选项与人员行填报都从这里取数
type RosterService struct {
	rosterRepo repository.RosterRepository
}

func NewRosterService(rosterRepo repository.RosterRepository) *RosterService {
	return &RosterService{rosterRepo: rosterRepo}
}

func (s *RosterService) Jobs() ([]model.Job, error) {
	jobs, err := s.rosterRepo.Jobs()
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (s *RosterService) People() ([]model.Person, error) {
	people, err := s.rosterRepo.People()
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}

func (s *RosterService) Locations() ([]model.Location, error) {
	locations, err := s.rosterRepo.Locations()
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (s *RosterService) Categories() ([]model.Category, error) {
	categories, err := s.rosterRepo.Categories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
