package routes

import (
	"net/http"

	"github.com/Spyboss/RealTaste-sub000/configs"
	"github.com/Spyboss/RealTaste-sub000/controllers"
	"github.com/Spyboss/RealTaste-sub000/middlewares"
	"github.com/Spyboss/RealTaste-sub000/pkg/payhere"
	"github.com/Spyboss/RealTaste-sub000/repository"
	"github.com/Spyboss/RealTaste-sub000/services"
	"github.com/Spyboss/RealTaste-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	restaurant := services.Coordinate{Lat: cfg.RestaurantLat, Lng: cfg.RestaurantLng}
	deliverySvc := services.NewDeliveryService(settingsRepo, restaurant)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, deliverySvc, hub, cfg.TaxRate, cfg.PrepMinutes)
	queueSvc := services.NewQueueService(db, orderRepo, orderSvc, hub)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	gateway := payhere.New(cfg.PayHereMerchantID, cfg.PayHereSecret)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	staffCtrl := controllers.NewStaffOrderController(orderSvc, queueSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	paymentCtrl := controllers.NewPaymentController(orderSvc, gateway, cfg.Currency)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Delivery quotes (public)
	r.GET("/delivery/quote", deliveryCtrl.Quote)
	r.GET("/delivery/standard", deliveryCtrl.Standard)

	// Orders (guests may create; everything else needs a login)
	r.POST("/orders", middlewares.OptionalAuth(cfg.JWTSecret), orderCtrl.Create)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)
	}

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/orders", orderCtrl.ListForMe)
	}

	// Staff queue (staff/admin)
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "admin"))
	{
		staff.GET("/queue", staffCtrl.List)
		staff.PUT("/queue/reorder", staffCtrl.Reorder)
		staff.PATCH("/queue/status", staffCtrl.BulkUpdateStatus)
		staff.DELETE("/queue", staffCtrl.Remove)
		staff.PATCH("/orders/:id/status", staffCtrl.UpdateStatus)
		staff.PATCH("/orders/:id/priority", staffCtrl.SetPriority)
		staff.PATCH("/orders/:id/assign", staffCtrl.AssignStaff)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/delivery-settings", deliveryCtrl.GetSettings)
		admin.PUT("/delivery-settings", deliveryCtrl.UpdateSettings)
	}

	// Payments
	r.POST("/payments/checkout", middlewares.AuthMiddleware(cfg.JWTSecret), paymentCtrl.Checkout)
	r.POST("/payments/notify", paymentCtrl.Notify) // gateway callback, signature-verified

	// Realtime queue updates for staff dashboards
	r.GET("/ws/orders", middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "admin"), hub.HandleWebSocket)
}
