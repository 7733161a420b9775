package repository

import (
	"time"

	"github.com/Spyboss/RealTaste-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// QueueFilter narrows the active-queue view.
type QueueFilter struct {
	Statuses []entity.OrderStatus
	StaffID  *uint
}

// ---------------- Orders ----------------

// CreateOrder persists the order with its items and addons in the caller's
// transaction; gorm cascades the nested associations in the same tx.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items.Addons").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForCustomer(customerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items.Addons").
		Where("id = ? AND customer_id = ?", orderID, customerID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrder applies a field patch to one order.
func (r *OrderRepository) UpdateOrder(tx *gorm.DB, orderID uint, patch map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(patch).Error
}

// GET /profile/orders
type OrderSummary struct {
	ID          uint               `json:"id"`
	OrderType   entity.OrderType   `json:"orderType"`
	TotalAmount float64            `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForCustomer(customerID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_type, total_amount, status, created_at").
		Where("customer_id = ?", customerID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ---------------- Active queue ----------------

func activeScope(db *gorm.DB) *gorm.DB {
	return db.Where("status NOT IN ?", entity.TerminalStatusNames())
}

// ListActive returns the staff queue view: urgent first, then queue position,
// then age. Filters are optional.
func (r *OrderRepository) ListActive(f QueueFilter) ([]entity.Order, error) {
	db := activeScope(r.DB.Model(&entity.Order{})).Preload("Items.Addons")
	if len(f.Statuses) > 0 {
		db = db.Where("status IN ?", f.Statuses)
	}
	if f.StaffID != nil {
		db = db.Where("assigned_staff_id = ?", *f.StaffID)
	}

	var out []entity.Order
	err := db.Order("CASE priority WHEN 'urgent' THEN 0 WHEN 'normal' THEN 1 ELSE 2 END").
		Order("queue_position ASC").
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

// CountActiveIn counts how many of the given ids are active queued orders;
// the reorder membership check compares this against len(ids).
func (r *OrderRepository) CountActiveIn(tx *gorm.DB, ids []uint) (int64, error) {
	var cnt int64
	err := activeScope(tx.Model(&entity.Order{})).Where("id IN ?", ids).Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) SetQueuePosition(tx *gorm.DB, orderID uint, pos int) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("queue_position", pos).Error
}

// NextQueuePosition returns max(active position)+1, 0 for an empty queue.
func (r *OrderRepository) NextQueuePosition(tx *gorm.DB) (int, error) {
	var row struct{ Max *int }
	err := activeScope(tx.Model(&entity.Order{})).
		Select("MAX(queue_position) AS max").Scan(&row).Error
	if err != nil {
		return 0, err
	}
	if row.Max == nil {
		return 0, nil
	}
	return *row.Max + 1, nil
}
