package services

import (
	"errors"
	"time"

	"github.com/Spyboss/RealTaste-sub000/entity"
	"github.com/Spyboss/RealTaste-sub000/repository"

	"gorm.io/gorm"
)

// QueueService owns the staff-facing view of active orders. Reads always hit
// the store so concurrent staff never diverge; writes are patch-granular
// except Reorder, which is all-or-nothing.
type QueueService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Orders *OrderService
	Events EventEmitter
}

func NewQueueService(db *gorm.DB, repo *repository.OrderRepository, orders *OrderService, events EventEmitter) *QueueService {
	if events == nil {
		events = NopEmitter{}
	}
	return &QueueService{DB: db, Repo: repo, Orders: orders, Events: events}
}

// List returns active orders ordered by priority desc, queue position asc,
// creation time asc.
func (s *QueueService) List(f repository.QueueFilter) ([]entity.Order, error) {
	return s.Repo.ListActive(f)
}

// Reorder assigns queue_position = index for each id, in one transaction.
// If any id is not an active queued order the whole batch is rejected and no
// position changes.
func (s *QueueService) Reorder(orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cnt, err := s.Repo.CountActiveIn(tx, orderIDs)
		if err != nil {
			return err
		}
		// duplicates in the batch also fail this check
		if cnt != int64(len(orderIDs)) {
			return ErrInvalidQueueMembership
		}
		for i, id := range orderIDs {
			if err := s.Repo.SetQueuePosition(tx, id, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Events.Emit(Event{Type: EventQueueReordered, OrderIDs: orderIDs})
	return nil
}

// SetPriority is a pure metadata update; status and position are untouched.
func (s *QueueService) SetPriority(orderID uint, p entity.OrderPriority) (*entity.Order, error) {
	switch p {
	case entity.PriorityUrgent, entity.PriorityNormal, entity.PriorityLow:
	default:
		return nil, errors.New("invalid priority")
	}
	return s.patchOrder(orderID, map[string]any{"priority": p})
}

// AssignStaff is a pure metadata update.
func (s *QueueService) AssignStaff(orderID, staffID uint) (*entity.Order, error) {
	return s.patchOrder(orderID, map[string]any{"assigned_staff_id": staffID})
}

// Remove takes orders off the queue by cancelling them; removal is never a
// delete. Per-id best effort, like any bulk status change.
func (s *QueueService) Remove(orderIDs []uint, actor Actor) BulkResult {
	return s.Orders.BulkUpdateStatus(orderIDs, entity.StatusCancelled, actor)
}

func (s *QueueService) patchOrder(orderID uint, patch map[string]any) (*entity.Order, error) {
	if _, err := s.Orders.Get(orderID); err != nil {
		return nil, err
	}
	patch["updated_at"] = time.Now()
	if err := s.Repo.UpdateOrder(s.DB, orderID, patch); err != nil {
		return nil, err
	}
	return s.Orders.Get(orderID)
}
