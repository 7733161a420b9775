package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Spyboss/RealTaste-sub000/entity"
	"github.com/Spyboss/RealTaste-sub000/repository"
	"github.com/Spyboss/RealTaste-sub000/utils"

	"gorm.io/gorm"
)

// Actor is the pre-resolved caller identity; the service trusts it.
type Actor = utils.Identity

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Delivery *DeliveryService
	Events   EventEmitter

	TaxRate     float64
	PrepMinutes int
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	delivery *DeliveryService,
	events EventEmitter,
	taxRate float64,
	prepMinutes int,
) *OrderService {
	if events == nil {
		events = NopEmitter{}
	}
	return &OrderService{
		DB: db, Repo: repo, MenuRepo: menuRepo, Delivery: delivery,
		Events: events, TaxRate: taxRate, PrepMinutes: prepMinutes,
	}
}

// ----- DTOs from Controller -----

type CartLine struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	VariantID  *uint  `json:"variantId"`
	AddonIDs   []uint `json:"addonIds"`
	Qty        int    `json:"qty" binding:"required,min=1"`
	Note       string `json:"note"`
}

type DeliveryInput struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Notes   string  `json:"notes"`
}

type CreateOrderInput struct {
	Items         []CartLine           `json:"items" binding:"required,min=1"`
	CustomerID    *uint                `json:"-"` // nil = guest
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone" binding:"required"`
	OrderType     entity.OrderType     `json:"orderType" binding:"required"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" binding:"required"`
	Delivery      *DeliveryInput       `json:"delivery"`
}

// ----- Create -----

// CreateOrder prices the cart, validates delivery, and persists order, items
// and addons atomically. Nothing is written if any validation fails.
func (s *OrderService) CreateOrder(in CreateOrderInput) (*entity.Order, error) {
	if len(in.Items) == 0 {
		return nil, errors.New("items is required")
	}
	if in.OrderType != entity.OrderTypePickup && in.OrderType != entity.OrderTypeDelivery {
		return nil, errors.New("invalid order type")
	}
	if !in.PaymentMethod.Valid() {
		return nil, errors.New("invalid payment method")
	}

	items, subtotal, err := s.priceCart(in.Items)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		OrderType:     in.OrderType,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      subtotal,
		Status:        entity.StatusReceived,
		PaymentStatus: entity.PaymentPending,
		Priority:      entity.PriorityNormal,
		CustomerID:    in.CustomerID,
		CustomerPhone: in.CustomerPhone,
		CustomerName:  in.CustomerName,
		Items:         items,
	}

	if in.OrderType == entity.OrderTypeDelivery {
		if err := s.attachDelivery(&order, in.Delivery, subtotal); err != nil {
			return nil, err
		}
	}

	order.TaxAmount = round2(subtotal * s.TaxRate)
	order.TotalAmount = round2(order.Subtotal + order.TaxAmount + order.DeliveryFee)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		pos, err := s.Repo.NextQueuePosition(tx)
		if err != nil {
			return err
		}
		order.QueuePosition = &pos
		return s.Repo.CreateOrder(tx, &order)
	})
	if err != nil {
		return nil, err
	}

	s.Events.Emit(Event{Type: EventOrderCreated, OrderID: order.ID, NewStatus: order.Status})
	return &order, nil
}

// priceCart resolves every line against the menu and snapshots names/prices.
// unitPrice = basePrice + variant modifier + sum(addon prices).
func (s *OrderService) priceCart(lines []CartLine) ([]entity.OrderItem, float64, error) {
	items := make([]entity.OrderItem, 0, len(lines))
	var subtotal float64

	for _, line := range lines {
		if line.Qty < 1 {
			return nil, 0, errors.New("qty must be at least 1")
		}

		m, err := s.MenuRepo.GetItem(line.MenuItemID)
		if err != nil || !m.IsAvailable {
			return nil, 0, fmt.Errorf("%w: item %d", ErrItemUnavailable, line.MenuItemID)
		}
		unit := m.BasePrice

		item := entity.OrderItem{
			MenuItemID: m.ID,
			ItemName:   m.Name,
			Qty:        line.Qty,
			Note:       line.Note,
		}

		if line.VariantID != nil {
			v, err := s.MenuRepo.GetVariant(*line.VariantID)
			if err != nil || !v.IsAvailable || v.MenuItemID != m.ID {
				return nil, 0, fmt.Errorf("%w: variant %d", ErrItemUnavailable, *line.VariantID)
			}
			unit += v.PriceModifier
			item.VariantID = &v.ID
			item.VariantName = v.Name
		}

		for _, addonID := range line.AddonIDs {
			a, err := s.MenuRepo.GetAddon(addonID)
			if err != nil || !a.IsAvailable || a.MenuItemID != m.ID {
				return nil, 0, fmt.Errorf("%w: addon %d", ErrItemUnavailable, addonID)
			}
			unit += a.Price
			item.Addons = append(item.Addons, entity.OrderItemAddon{
				AddonID:   a.ID,
				AddonName: a.Name,
				Price:     a.Price,
			})
		}

		item.UnitPrice = round2(unit)
		item.Total = round2(unit * float64(line.Qty))
		subtotal += item.Total
		items = append(items, item)
	}

	return items, round2(subtotal), nil
}

func (s *OrderService) attachDelivery(order *entity.Order, in *DeliveryInput, subtotal float64) error {
	if in == nil || in.Address == "" {
		return ErrDeliveryAddressMissing
	}
	dest := Coordinate{Lat: in.Lat, Lng: in.Lng}
	if !dest.Valid() {
		return ErrInvalidCoordinate
	}

	settings, err := s.Delivery.Settings()
	if err != nil {
		return err
	}
	calc := CalculateDeliveryFee(settings, s.Delivery.Restaurant, dest)
	if !calc.IsWithinRange {
		return ErrOutOfDeliveryRange
	}
	if subtotal < settings.MinOrderForDelivery {
		return ErrBelowMinimumOrder
	}

	eta := time.Now().Add(time.Duration(s.PrepMinutes+calc.EstimatedMinutes) * time.Minute)
	order.DeliveryAddress = in.Address
	order.DeliveryLat = &dest.Lat
	order.DeliveryLng = &dest.Lng
	order.DeliveryDistanceKm = &calc.DistanceKm
	order.DeliveryNotes = in.Notes
	order.DeliveryFee = calc.DeliveryFee
	order.EstimatedDeliveryTime = &eta
	return nil
}

// ----- Status updates -----

// UpdateStatus runs one machine-validated transition and persists exactly the
// fields the transition touched, so concurrent writers race per field, not
// per row.
func (s *OrderService) UpdateStatus(orderID uint, requested entity.OrderStatus, actor Actor, eta *time.Time) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	oldStatus := o.Status
	if err := ApplyTransition(o, requested, TransitionContext{Now: time.Now(), ETA: eta}); err != nil {
		return nil, err
	}

	patch := map[string]any{
		"status":     o.Status,
		"updated_at": o.UpdatedAt,
	}
	if requested.IsTerminal() {
		patch["queue_position"] = nil
	}
	switch requested {
	case entity.StatusReadyForPickup:
		if eta != nil {
			patch["estimated_pickup_time"] = o.EstimatedPickupTime
		}
	case entity.StatusReadyForDelivery:
		if eta != nil {
			patch["estimated_delivery_time"] = o.EstimatedDeliveryTime
		}
	case entity.StatusDelivered:
		patch["actual_delivery_time"] = o.ActualDeliveryTime
	}

	if err := s.Repo.UpdateOrder(s.DB, orderID, patch); err != nil {
		return nil, err
	}

	s.Events.Emit(Event{
		Type:      EventStatusChanged,
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: o.Status,
	})
	return o, nil
}

type BulkFailure struct {
	ID     uint   `json:"id"`
	Reason string `json:"reason"`
}

type BulkResult struct {
	Updated []*entity.Order `json:"updated"`
	Failed  []BulkFailure   `json:"failed"`
}

// BulkUpdateStatus applies the transition per order independently, in the
// order the ids were supplied. One bad order never blocks the rest.
func (s *OrderService) BulkUpdateStatus(orderIDs []uint, requested entity.OrderStatus, actor Actor) BulkResult {
	var res BulkResult
	for _, id := range orderIDs {
		o, err := s.UpdateStatus(id, requested, actor, nil)
		if err != nil {
			res.Failed = append(res.Failed, BulkFailure{ID: id, Reason: err.Error()})
			continue
		}
		res.Updated = append(res.Updated, o)
	}
	return res
}

// ----- Customer cancel -----

// cancellableByCustomer is stricter than the machine: customers may only back
// out before the kitchen starts.
func cancellableByCustomer(status entity.OrderStatus) bool {
	return status == entity.StatusReceived || status == entity.StatusConfirmed
}

func (s *OrderService) CancelByCustomer(orderID uint, requester Actor) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !requester.IsAdmin() {
		if o.CustomerID == nil || *o.CustomerID != requester.UserID {
			return nil, ErrNotCancellable
		}
	}
	if !cancellableByCustomer(o.Status) {
		return nil, ErrNotCancellable
	}

	return s.UpdateStatus(orderID, entity.StatusCancelled, requester, nil)
}

// ----- Payment status -----

// SetPaymentStatus is the gateway callback's mutation; it never touches the
// order status flow.
func (s *OrderService) SetPaymentStatus(orderID uint, ps entity.PaymentStatus) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	patch := map[string]any{
		"payment_status": ps,
		"updated_at":     time.Now(),
	}
	if err := s.Repo.UpdateOrder(s.DB, orderID, patch); err != nil {
		return nil, err
	}
	o.PaymentStatus = ps
	return o, nil
}

// ----- Reads -----

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *OrderService) GetForCustomer(customerID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForCustomer(customerID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *OrderService) ListForCustomer(customerID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForCustomer(customerID, limit)
}
