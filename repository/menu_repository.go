package repository

import (
	"github.com/Spyboss/RealTaste-sub000/entity"

	"gorm.io/gorm"
)

// MenuRepository is read-only here: the ordering core only resolves prices
// and availability; catalog management lives elsewhere.
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) GetItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) GetVariant(id uint) (*entity.MenuVariant, error) {
	var v entity.MenuVariant
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *MenuRepository) GetAddon(id uint) (*entity.MenuAddon, error) {
	var a entity.MenuAddon
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
