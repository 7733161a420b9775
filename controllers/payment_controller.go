package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Spyboss/RealTaste-sub000/entity"
	"github.com/Spyboss/RealTaste-sub000/pkg/payhere"
	"github.com/Spyboss/RealTaste-sub000/pkg/resp"
	"github.com/Spyboss/RealTaste-sub000/services"
	"github.com/Spyboss/RealTaste-sub000/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Orders   *services.OrderService
	Gateway  *payhere.Gateway
	Currency string
}

func NewPaymentController(orders *services.OrderService, gw *payhere.Gateway, currency string) *PaymentController {
	return &PaymentController{Orders: orders, Gateway: gw, Currency: currency}
}

type checkoutReq struct {
	OrderID uint `json:"orderId" binding:"required"`
}

// POST /payments/checkout — returns the signed fields the client posts to
// the gateway's hosted checkout
func (ctl *PaymentController) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	who := utils.CurrentIdentity(c)

	order, err := ctl.Orders.Get(req.OrderID)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	if !who.IsAdmin() && (order.CustomerID == nil || *order.CustomerID != who.UserID) {
		resp.Forbidden(c, "not your order")
		return
	}
	if order.PaymentMethod != entity.PaymentMethodCard {
		resp.BadRequest(c, "order is not a card order")
		return
	}
	if order.PaymentStatus == entity.PaymentCompleted {
		resp.Conflict(c, "order already paid")
		return
	}

	fields := ctl.Gateway.BuildPaymentRequest(
		fmt.Sprintf("%d", order.ID),
		order.TotalAmount,
		ctl.Currency,
		payhere.Customer{
			FirstName: order.CustomerName,
			Phone:     order.CustomerPhone,
		},
	)
	resp.OK(c, fields)
}

// POST /payments/notify — server-to-server callback from the gateway
func (ctl *PaymentController) Notify(c *gin.Context) {
	var n payhere.Notification
	if err := c.ShouldBind(&n); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if !ctl.Gateway.VerifyNotification(n) {
		log.Printf("payment notify rejected: bad signature for order %s", n.OrderID)
		resp.BadRequest(c, "invalid signature")
		return
	}

	var orderID uint
	if _, err := fmt.Sscan(n.OrderID, &orderID); err != nil {
		resp.BadRequest(c, "bad order id")
		return
	}

	var ps entity.PaymentStatus
	switch n.StatusCode {
	case payhere.CodeSuccess:
		ps = entity.PaymentCompleted
	case payhere.CodePending:
		// gateway will call again with a final code
		c.Status(http.StatusOK)
		return
	case payhere.CodeChargedback:
		ps = entity.PaymentRefunded
	default:
		ps = entity.PaymentFailed
	}

	if _, err := ctl.Orders.SetPaymentStatus(orderID, ps); err != nil {
		writeOrderError(c, err)
		return
	}
	log.Printf("payment notify: order %d -> %s", orderID, ps)
	c.Status(http.StatusOK)
}
