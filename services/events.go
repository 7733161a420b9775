package services

import "github.com/Spyboss/RealTaste-sub000/entity"

const (
	EventOrderCreated   = "order_created"
	EventStatusChanged  = "status_changed"
	EventQueueReordered = "queue_reordered"
)

type Event struct {
	Type      string             `json:"type"`
	OrderID   uint               `json:"orderId,omitempty"`
	OrderIDs  []uint             `json:"orderIds,omitempty"`
	OldStatus entity.OrderStatus `json:"oldStatus,omitempty"`
	NewStatus entity.OrderStatus `json:"newStatus,omitempty"`
}

// EventEmitter fans state changes out to subscribers. The core emits exactly
// one event per state change; delivery/retry is the hub's problem.
type EventEmitter interface {
	Emit(Event)
}

// NopEmitter is used when no hub is wired (tests, CLI tools).
type NopEmitter struct{}

func (NopEmitter) Emit(Event) {}
