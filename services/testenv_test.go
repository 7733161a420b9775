package services

import (
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/Spyboss/RealTaste-sub000/entity"
	"github.com/Spyboss/RealTaste-sub000/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// restaurant used across the service tests
var testRestaurant = Coordinate{Lat: 6.261449, Lng: 80.906462}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// a named shared in-memory DB so gorm's pooled connections see one schema
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{}, &entity.MenuVariant{}, &entity.MenuAddon{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemAddon{},
		&entity.DeliverySettings{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type recordEmitter struct {
	events []Event
}

func (r *recordEmitter) Emit(e Event) { r.events = append(r.events, e) }

func (r *recordEmitter) last(t *testing.T) Event {
	t.Helper()
	if len(r.events) == 0 {
		t.Fatal("no events emitted")
	}
	return r.events[len(r.events)-1]
}

type testEnv struct {
	db       *gorm.DB
	orders   *OrderService
	queue    *QueueService
	delivery *DeliveryService
	emitter  *recordEmitter

	rice      entity.MenuItem // 850, Large +200, Extra Egg +100
	riceLarge entity.MenuVariant
	riceEgg   entity.MenuAddon
	kottu     entity.MenuItem // 1200
	soldOut   entity.MenuItem // unavailable
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	env := &testEnv{db: db, emitter: &recordEmitter{}}

	env.rice = entity.MenuItem{Name: "Chicken Fried Rice", BasePrice: 850, IsAvailable: true}
	db.Create(&env.rice)
	env.riceLarge = entity.MenuVariant{MenuItemID: env.rice.ID, Name: "Large", PriceModifier: 200, IsAvailable: true}
	db.Create(&env.riceLarge)
	env.riceEgg = entity.MenuAddon{MenuItemID: env.rice.ID, Name: "Extra Egg", Price: 100, IsAvailable: true}
	db.Create(&env.riceEgg)
	env.kottu = entity.MenuItem{Name: "Cheese Kottu", BasePrice: 1200, IsAvailable: true}
	db.Create(&env.kottu)
	env.soldOut = entity.MenuItem{Name: "Seafood Platter", BasePrice: 3500, IsAvailable: false}
	db.Create(&env.soldOut)

	db.Create(&entity.DeliverySettings{
		BaseFee: 180, PerKmFee: 40, MaxRangeKm: 5, MinOrderForDelivery: 0, DeliveryEnabled: true,
	})

	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	env.delivery = NewDeliveryService(settingsRepo, testRestaurant)
	env.orders = NewOrderService(db, orderRepo, menuRepo, env.delivery, env.emitter, 0, 20)
	env.queue = NewQueueService(db, orderRepo, env.orders, env.emitter)
	return env
}

// pointAtKm returns a coordinate the given distance due north of the
// restaurant; for a pure latitude offset the haversine distance is exact.
func pointAtKm(km float64) Coordinate {
	const earthRadiusKm = 6371
	dLat := km / earthRadiusKm * 180 / math.Pi
	return Coordinate{Lat: testRestaurant.Lat + dLat, Lng: testRestaurant.Lng}
}

func (e *testEnv) createPickup(t *testing.T) *entity.Order {
	t.Helper()
	o, err := e.orders.CreateOrder(CreateOrderInput{
		Items:         []CartLine{{MenuItemID: e.rice.ID, Qty: 1}},
		CustomerPhone: "0771234567",
		OrderType:     entity.OrderTypePickup,
		PaymentMethod: entity.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("create pickup order: %v", err)
	}
	return o
}
