package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Spyboss/RealTaste-sub000/entity"
	"github.com/Spyboss/RealTaste-sub000/pkg/resp"
	"github.com/Spyboss/RealTaste-sub000/repository"
	"github.com/Spyboss/RealTaste-sub000/services"
	"github.com/Spyboss/RealTaste-sub000/utils"

	"github.com/gin-gonic/gin"
)

type StaffOrderController struct {
	Orders *services.OrderService
	Queue  *services.QueueService
}

func NewStaffOrderController(orders *services.OrderService, queue *services.QueueService) *StaffOrderController {
	return &StaffOrderController{Orders: orders, Queue: queue}
}

func currentActor(c *gin.Context) services.Actor {
	return utils.CurrentIdentity(c)
}

// ---------------- Queue view ----------------

// GET /staff/queue?status=preparing,received&staffId=3
func (ctl *StaffOrderController) List(c *gin.Context) {
	var f repository.QueueFilter
	if s := c.Query("status"); s != "" {
		for _, part := range strings.Split(s, ",") {
			st := entity.OrderStatus(strings.TrimSpace(part))
			if !st.Valid() {
				resp.BadRequest(c, "unknown status: "+part)
				return
			}
			f.Statuses = append(f.Statuses, st)
		}
	}
	if s := c.Query("staffId"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			tmp := uint(v)
			f.StaffID = &tmp
		}
	}

	items, err := ctl.Queue.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// ---------------- Status updates ----------------

type updateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
	ETA    *time.Time         `json:"eta"`
}

// PATCH /staff/orders/:id/status
func (ctl *StaffOrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Orders.UpdateStatus(uint(id), req.Status, currentActor(c), req.ETA)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

type bulkStatusReq struct {
	OrderIDs []uint             `json:"orderIds" binding:"required,min=1"`
	Status   entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /staff/queue/status — per-order isolation, partial failure expected
func (ctl *StaffOrderController) BulkUpdateStatus(c *gin.Context) {
	var req bulkStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := ctl.Orders.BulkUpdateStatus(req.OrderIDs, req.Status, currentActor(c))
	resp.OK(c, res)
}

// ---------------- Queue mutations ----------------

type reorderReq struct {
	OrderIDs []uint `json:"orderIds" binding:"required,min=1"`
}

// PUT /staff/queue/reorder
func (ctl *StaffOrderController) Reorder(c *gin.Context) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Queue.Reorder(req.OrderIDs); err != nil {
		writeOrderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type priorityReq struct {
	Priority entity.OrderPriority `json:"priority" binding:"required"`
}

// PATCH /staff/orders/:id/priority
func (ctl *StaffOrderController) SetPriority(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req priorityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Queue.SetPriority(uint(id), req.Priority)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

type assignReq struct {
	StaffID uint `json:"staffId" binding:"required"`
}

// PATCH /staff/orders/:id/assign
func (ctl *StaffOrderController) AssignStaff(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Queue.AssignStaff(uint(id), req.StaffID)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /staff/queue — removal is modeled as cancellation
func (ctl *StaffOrderController) Remove(c *gin.Context) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := ctl.Queue.Remove(req.OrderIDs, currentActor(c))
	resp.OK(c, res)
}
