package controllers

import (
	"errors"
	"strconv"

	"github.com/Spyboss/RealTaste-sub000/pkg/resp"
	"github.com/Spyboss/RealTaste-sub000/services"
	"github.com/Spyboss/RealTaste-sub000/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// writeOrderError maps the service error taxonomy onto HTTP: bad input vs
// conflict vs not found vs our fault.
func writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrOutOfDeliveryRange),
		errors.Is(err, services.ErrBelowMinimumOrder),
		errors.Is(err, services.ErrInvalidCoordinate),
		errors.Is(err, services.ErrDeliveryAddressMissing):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNotCancellable),
		errors.Is(err, services.ErrInvalidQueueMembership):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /orders — guests allowed, a logged-in customer gets linked
func (oc *OrderController) Create(c *gin.Context) {
	var in services.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if who := utils.CurrentIdentity(c); !who.Guest() {
		in.CustomerID = &who.UserID
	}

	order, err := oc.Orders.CreateOrder(in)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id (order owner, or staff/admin)
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	who := utils.CurrentIdentity(c)

	if who.IsStaff() {
		order, err := oc.Orders.Get(uint(id))
		if err != nil {
			writeOrderError(c, err)
			return
		}
		resp.OK(c, order)
		return
	}

	order, err := oc.Orders.GetForCustomer(who.UserID, uint(id))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Orders.ListForCustomer(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Orders.CancelByCustomer(uint(id), utils.CurrentIdentity(c))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}
