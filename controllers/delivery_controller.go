package controllers

import (
	"strconv"

	"github.com/Spyboss/RealTaste-sub000/pkg/resp"
	"github.com/Spyboss/RealTaste-sub000/services"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	Delivery *services.DeliveryService
}

func NewDeliveryController(d *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Delivery: d}
}

// GET /delivery/quote?lat=..&lng=..
func (ctl *DeliveryController) Quote(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		resp.BadRequest(c, "lat and lng are required")
		return
	}

	calc, err := ctl.Delivery.Quote(services.Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, calc)
}

// GET /delivery/standard — reference-distance quote for when the customer
// has not entered an address yet
func (ctl *DeliveryController) Standard(c *gin.Context) {
	calc, err := ctl.Delivery.StandardQuote()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, calc)
}

// ---------------- Admin settings ----------------

// GET /admin/delivery-settings
func (ctl *DeliveryController) GetSettings(c *gin.Context) {
	s, err := ctl.Delivery.Settings()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

type settingsPatchReq struct {
	BaseFee             *float64 `json:"baseFee"`
	PerKmFee            *float64 `json:"perKmFee"`
	MaxRangeKm          *float64 `json:"maxRangeKm"`
	MinOrderForDelivery *float64 `json:"minOrderForDelivery"`
	DeliveryEnabled     *bool    `json:"deliveryEnabled"`
}

// PUT /admin/delivery-settings — persists then invalidates the cache before
// responding, so the next quote already sees the new rate card
func (ctl *DeliveryController) UpdateSettings(c *gin.Context) {
	var req settingsPatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	patch := map[string]any{}
	if req.BaseFee != nil {
		if *req.BaseFee < 0 {
			resp.BadRequest(c, "baseFee must be >= 0")
			return
		}
		patch["base_fee"] = *req.BaseFee
	}
	if req.PerKmFee != nil {
		if *req.PerKmFee < 0 {
			resp.BadRequest(c, "perKmFee must be >= 0")
			return
		}
		patch["per_km_fee"] = *req.PerKmFee
	}
	if req.MaxRangeKm != nil {
		if *req.MaxRangeKm <= 0 {
			resp.BadRequest(c, "maxRangeKm must be > 0")
			return
		}
		patch["max_range_km"] = *req.MaxRangeKm
	}
	if req.MinOrderForDelivery != nil {
		if *req.MinOrderForDelivery < 0 {
			resp.BadRequest(c, "minOrderForDelivery must be >= 0")
			return
		}
		patch["min_order_for_delivery"] = *req.MinOrderForDelivery
	}
	if req.DeliveryEnabled != nil {
		patch["delivery_enabled"] = *req.DeliveryEnabled
	}
	if len(patch) == 0 {
		resp.BadRequest(c, "no fields to update")
		return
	}

	s, err := ctl.Delivery.UpdateSettings(patch)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}
