package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"` // base + variant modifier + addons
	Total     float64 `json:"total"`
	Note      string  `json:"note"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint   `json:"menuItemId"`
	ItemName   string `json:"itemName"` // snapshot at order time

	VariantID   *uint  `json:"variantId,omitempty"`
	VariantName string `json:"variantName,omitempty"`

	Addons []OrderItemAddon `json:"addons"`
}
