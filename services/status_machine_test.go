package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Spyboss/RealTaste-sub000/entity"
)

var allStatuses = []entity.OrderStatus{
	entity.StatusReceived, entity.StatusConfirmed, entity.StatusPreparing,
	entity.StatusReadyForPickup, entity.StatusReadyForDelivery,
	entity.StatusPickedUp, entity.StatusDelivered,
	entity.StatusCompleted, entity.StatusCancelled,
}

// expected forward moves, cancellation handled separately
var wantPickup = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusReceived:       {entity.StatusConfirmed, entity.StatusPreparing},
	entity.StatusConfirmed:      {entity.StatusPreparing},
	entity.StatusPreparing:      {entity.StatusReadyForPickup},
	entity.StatusReadyForPickup: {entity.StatusPickedUp},
	entity.StatusPickedUp:       {entity.StatusCompleted},
}

var wantDelivery = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusReceived:         {entity.StatusConfirmed, entity.StatusPreparing},
	entity.StatusConfirmed:        {entity.StatusPreparing},
	entity.StatusPreparing:        {entity.StatusReadyForDelivery},
	entity.StatusReadyForDelivery: {entity.StatusDelivered},
	entity.StatusDelivered:        {entity.StatusCompleted},
}

func contains(list []entity.OrderStatus, s entity.OrderStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// TestTransitionTableExhaustive checks every (current, requested, orderType)
// triple against the documented table.
func TestTransitionTableExhaustive(t *testing.T) {
	flows := map[entity.OrderType]map[entity.OrderStatus][]entity.OrderStatus{
		entity.OrderTypePickup:   wantPickup,
		entity.OrderTypeDelivery: wantDelivery,
	}
	for ot, want := range flows {
		for _, cur := range allStatuses {
			for _, req := range allStatuses {
				expected := contains(want[cur], req) ||
					(req == entity.StatusCancelled && !cur.IsTerminal())
				got := CanTransition(cur, req, ot)
				if got != expected {
					t.Errorf("%s: %s -> %s = %v, want %v", ot, cur, req, got, expected)
				}
			}
		}
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	if CanTransition(entity.StatusReceived, "shipped", entity.OrderTypePickup) {
		t.Error("unknown target status must be rejected")
	}
}

func TestApplyTransitionInvalid(t *testing.T) {
	o := &entity.Order{OrderType: entity.OrderTypePickup, Status: entity.StatusCompleted}
	err := ApplyTransition(o, entity.StatusPreparing, TransitionContext{})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if o.Status != entity.StatusCompleted {
		t.Error("failed transition must not mutate the order")
	}
}

func TestApplyTransitionClearsQueuePositionOnTerminal(t *testing.T) {
	for _, req := range []entity.OrderStatus{entity.StatusCancelled, entity.StatusPickedUp} {
		pos := 3
		o := &entity.Order{
			OrderType:     entity.OrderTypePickup,
			Status:        entity.StatusReceived,
			QueuePosition: &pos,
		}
		if req == entity.StatusPickedUp {
			o.Status = entity.StatusReadyForPickup
		}
		if err := ApplyTransition(o, req, TransitionContext{}); err != nil {
			t.Fatalf("transition to %s: %v", req, err)
		}
		if o.QueuePosition != nil {
			t.Errorf("queue position not cleared on %s", req)
		}
	}
}

func TestApplyTransitionStampsETA(t *testing.T) {
	eta := time.Now().Add(25 * time.Minute)

	o := &entity.Order{OrderType: entity.OrderTypePickup, Status: entity.StatusPreparing}
	if err := ApplyTransition(o, entity.StatusReadyForPickup, TransitionContext{ETA: &eta}); err != nil {
		t.Fatal(err)
	}
	if o.EstimatedPickupTime == nil || !o.EstimatedPickupTime.Equal(eta) {
		t.Error("estimated pickup time not stamped")
	}

	d := &entity.Order{OrderType: entity.OrderTypeDelivery, Status: entity.StatusPreparing}
	if err := ApplyTransition(d, entity.StatusReadyForDelivery, TransitionContext{ETA: &eta}); err != nil {
		t.Fatal(err)
	}
	if d.EstimatedDeliveryTime == nil || !d.EstimatedDeliveryTime.Equal(eta) {
		t.Error("estimated delivery time not stamped")
	}
}

func TestApplyTransitionStampsActualDelivery(t *testing.T) {
	now := time.Now()
	o := &entity.Order{OrderType: entity.OrderTypeDelivery, Status: entity.StatusReadyForDelivery}
	if err := ApplyTransition(o, entity.StatusDelivered, TransitionContext{Now: now}); err != nil {
		t.Fatal(err)
	}
	if o.ActualDeliveryTime == nil || !o.ActualDeliveryTime.Equal(now) {
		t.Error("actual delivery time not stamped")
	}
	if !o.UpdatedAt.Equal(now) {
		t.Error("updatedAt not stamped")
	}
}
