package entity

import (
	"gorm.io/gorm"
)

type OrderItemAddon struct {
	gorm.Model
	OrderItemID uint `json:"orderItemId"`

	AddonID   uint    `json:"addonId"`
	AddonName string  `json:"addonName"` // snapshot at order time
	Price     float64 `json:"price"`
}
