package entity

import (
	"gorm.io/gorm"
)

type MenuVariant struct {
	gorm.Model
	MenuItemID    uint    `json:"menuItemId"`
	Name          string  `json:"name"`
	PriceModifier float64 `json:"priceModifier"` // added to the item base price
	IsAvailable   bool    `json:"isAvailable"`
}
