package entity

import (
	"gorm.io/gorm"
)

type MenuAddon struct {
	gorm.Model
	MenuItemID  uint    `json:"menuItemId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}
