package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/Spyboss/RealTaste-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub fans order events out to connected staff clients. It implements
// services.EventEmitter; everything the lifecycle and queue services emit
// lands here exactly once and is broadcast to every subscriber.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.Event, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Emit satisfies services.EventEmitter. Never blocks the caller: if the hub
// is saturated the event is dropped for websocket clients only; the DB state
// is already committed and pollers will catch up.
func (h *OrderHub) Emit(e services.Event) {
	select {
	case h.broadcast <- e:
	default:
		log.Printf("ws: dropping event %s for order %d (hub saturated)", e.Type, e.OrderID)
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case e := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(e); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders (staff only, auth handled by middleware)
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	// reader loop just watches for close
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
