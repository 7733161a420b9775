package services

import (
	"time"

	"github.com/Spyboss/RealTaste-sub000/entity"
)

// Every status change funnels through this table; handlers never touch
// Order.Status directly. confirmed is skippable: received -> preparing is
// valid for both flows.
var pickupNext = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusReceived:       {entity.StatusConfirmed, entity.StatusPreparing},
	entity.StatusConfirmed:      {entity.StatusPreparing},
	entity.StatusPreparing:      {entity.StatusReadyForPickup},
	entity.StatusReadyForPickup: {entity.StatusPickedUp},
	entity.StatusPickedUp:       {entity.StatusCompleted},
}

var deliveryNext = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusReceived:         {entity.StatusConfirmed, entity.StatusPreparing},
	entity.StatusConfirmed:        {entity.StatusPreparing},
	entity.StatusPreparing:        {entity.StatusReadyForDelivery},
	entity.StatusReadyForDelivery: {entity.StatusDelivered},
	entity.StatusDelivered:        {entity.StatusCompleted},
}

// CanTransition reports whether requested is reachable from current for the
// given order type. cancelled is reachable from any non-terminal status.
func CanTransition(current, requested entity.OrderStatus, orderType entity.OrderType) bool {
	if !requested.Valid() {
		return false
	}
	if requested == entity.StatusCancelled {
		return !current.IsTerminal()
	}

	table := pickupNext
	if orderType == entity.OrderTypeDelivery {
		table = deliveryNext
	}
	for _, next := range table[current] {
		if next == requested {
			return true
		}
	}
	return false
}

// TransitionContext carries the side-effect inputs for ApplyTransition.
type TransitionContext struct {
	Now time.Time
	// ETA may be supplied when moving into ready_for_pickup / ready_for_delivery.
	ETA *time.Time
}

// ApplyTransition validates and applies requested to the order in memory.
// Side effects: UpdatedAt stamp, queue position cleared on terminal statuses,
// ETA stamped on the ready_* statuses, ActualDeliveryTime on delivered.
// The caller persists the mutated fields.
func ApplyTransition(o *entity.Order, requested entity.OrderStatus, tc TransitionContext) error {
	if !CanTransition(o.Status, requested, o.OrderType) {
		return ErrInvalidTransition
	}
	if tc.Now.IsZero() {
		tc.Now = time.Now()
	}

	o.Status = requested
	o.UpdatedAt = tc.Now

	switch requested {
	case entity.StatusReadyForPickup:
		if tc.ETA != nil {
			o.EstimatedPickupTime = tc.ETA
		}
	case entity.StatusReadyForDelivery:
		if tc.ETA != nil {
			o.EstimatedDeliveryTime = tc.ETA
		}
	case entity.StatusDelivered:
		now := tc.Now
		o.ActualDeliveryTime = &now
	}

	if requested.IsTerminal() {
		o.QueuePosition = nil
	}
	return nil
}
