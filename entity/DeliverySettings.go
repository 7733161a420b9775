package entity

import (
	"gorm.io/gorm"
)

// DeliverySettings is a singleton row; admin updates it, everything else reads
// it through the in-memory cache in services.
type DeliverySettings struct {
	gorm.Model
	BaseFee             float64 `json:"baseFee"`             // covers the first km
	PerKmFee            float64 `json:"perKmFee"`            // each additional whole km
	MaxRangeKm          float64 `json:"maxRangeKm"`
	MinOrderForDelivery float64 `json:"minOrderForDelivery"`
	DeliveryEnabled     bool    `json:"deliveryEnabled"`
}
