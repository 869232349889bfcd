package mockapi

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"service-booking-client/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// mock backend, local use only
		return true
	},
}

// StatusMessage is pushed to connected clients whenever an item's status changes
type StatusMessage struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      struct {
		OrderID uint               `json:"order_id"`
		ItemID  uint               `json:"item_id"`
		Status  models.OrderStatus `json:"status"`
	} `json:"data"`
}

// Hub fans status updates out to every connected websocket client
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]chan []byte)}
}

// BroadcastStatus pushes one status change to all connected clients. Sends are
// non-blocking; a client that cannot keep up is dropped.
func (h *Hub) BroadcastStatus(orderID, itemID uint, status models.OrderStatus) {
	message := StatusMessage{Type: "order_status", Timestamp: time.Now()}
	message.Data.OrderID = orderID
	message.Data.ItemID = itemID
	message.Data.Status = status

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Error marshaling status message: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, send := range h.clients {
		select {
		case send <- data:
		default:
			log.Printf("⚠️ Websocket client send buffer full, dropping connection")
			close(send)
			delete(h.clients, conn)
		}
	}
}

// handleOrderSocket upgrades the connection and streams status updates to it
func (s *Server) handleOrderSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Websocket upgrade failed: %v", err)
		return
	}

	send := make(chan []byte, 16)
	s.hub.mu.Lock()
	s.hub.clients[conn] = send
	s.hub.mu.Unlock()
	log.Printf("🔌 Order websocket client connected")

	// writer
	go func() {
		for data := range send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				break
			}
		}
		conn.Close()
	}()

	// reader, only to detect disconnects
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.hub.mu.Lock()
				if send, ok := s.hub.clients[conn]; ok {
					close(send)
					delete(s.hub.clients, conn)
				}
				s.hub.mu.Unlock()
				log.Printf("🔌 Order websocket client disconnected")
				return
			}
		}
	}()
}
