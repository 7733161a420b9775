package entity

import (
	"time"

	"gorm.io/gorm"
)

type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

type OrderPriority string

const (
	PriorityUrgent OrderPriority = "urgent"
	PriorityNormal OrderPriority = "normal"
	PriorityLow    OrderPriority = "low"
)

type Order struct {
	gorm.Model
	OrderType     OrderType     `gorm:"not null" json:"orderType"`
	PaymentMethod PaymentMethod `gorm:"not null" json:"paymentMethod"`

	Subtotal    float64 `json:"subtotal"`
	TaxAmount   float64 `json:"taxAmount"`
	DeliveryFee float64 `json:"deliveryFee"`
	TotalAmount float64 `json:"totalAmount"` // always subtotal + tax + delivery fee

	Status        OrderStatus   `gorm:"not null;default:received" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;default:pending" json:"paymentStatus"`

	Priority        OrderPriority `gorm:"not null;default:normal" json:"priority"`
	QueuePosition   *int          `json:"queuePosition"` // nil = not actively queued
	AssignedStaffID *uint         `json:"assignedStaffId"`

	EstimatedPickupTime   *time.Time `json:"estimatedPickupTime"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time `json:"actualDeliveryTime"`

	// delivery orders only
	DeliveryAddress    string   `json:"deliveryAddress,omitempty"`
	DeliveryLat        *float64 `json:"deliveryLat,omitempty"`
	DeliveryLng        *float64 `json:"deliveryLng,omitempty"`
	DeliveryDistanceKm *float64 `json:"deliveryDistanceKm,omitempty"`
	DeliveryNotes      string   `json:"deliveryNotes,omitempty"`

	CustomerID    *uint  `json:"customerId"` // nil = guest order
	CustomerPhone string `json:"customerPhone"`
	CustomerName  string `json:"customerName"`

	Items []OrderItem `json:"items"`
}
