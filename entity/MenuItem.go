package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	IsAvailable bool    `json:"isAvailable"`

	Variants []MenuVariant `json:"-"`
	Addons   []MenuAddon   `json:"-"`
}
