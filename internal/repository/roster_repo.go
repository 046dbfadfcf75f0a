package repository

import (
	"errors"

	"github.com/safedocs/backend/internal/model"
	"gorm.io/gorm"
)

type rosterRepository struct {
	db *gorm.DB
}

func NewRosterRepository(db *gorm.DB) RosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) Jobs() ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("active = ?", true).Order("title").Find(&jobs).Error
	return jobs, err
}

func (r *rosterRepository) People() ([]model.Person, error) {
	var people []model.Person
	err := r.db.Where("active = ?", true).Order("name").Find(&people).Error
	return people, err
}

func (r *rosterRepository) Person(id uint) (*model.Person, error) {
	var p model.Person
	err := r.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *rosterRepository) Locations() ([]model.Location, error) {
	var locations []model.Location
	err := r.db.Order("name").Find(&locations).Error
	return locations, err
}

func (r *rosterRepository) Categories() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("sort_order").Find(&categories).Error
	return categories, err
}
