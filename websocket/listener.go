package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"service-booking-client/models"
	"service-booking-client/store"
)

// Message is the envelope the backend pushes over the order websocket
type Message struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// StatusUpdate is the payload of an order_status message
type StatusUpdate struct {
	OrderID uint               `json:"order_id"`
	ItemID  uint               `json:"item_id"`
	Status  models.OrderStatus `json:"status"`
}

// StatusListener keeps a websocket connection to the backend's order stream and
// turns incoming status pushes into targeted patches on the store, so the UI
// reflects backend-side progress without polling.
type StatusListener struct {
	url      string
	store    *store.Store
	stopChan chan bool
}

// NewStatusListener creates a listener for the given websocket URL
func NewStatusListener(url string, s *store.Store) *StatusListener {
	return &StatusListener{
		url:      url,
		store:    s,
		stopChan: make(chan bool, 1),
	}
}

// Start begins listening in the background
func (l *StatusListener) Start() {
	go l.run()
	log.Println("🚀 Order status listener started")
}

// Stop closes the listener
func (l *StatusListener) Stop() {
	select {
	case l.stopChan <- true:
	default:
	}
	log.Println("🛑 Order status listener stopped")
}

// run dials and reads until stopped, reconnecting with a flat backoff when the
// connection drops
func (l *StatusListener) run() {
	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		conn, _, err := websocket.DefaultDialer.Dial(l.url, nil)
		if err != nil {
			log.Printf("⚠️ Order websocket dial failed: %v, retrying", err)
			select {
			case <-l.stopChan:
				return
			case <-time.After(5 * time.Second):
				continue
			}
		}

		log.Printf("🔌 Connected to order status stream")
		l.readLoop(conn)
		conn.Close()
	}
}

// readLoop consumes messages until the connection breaks or Stop is called
func (l *StatusListener) readLoop(conn *websocket.Conn) {
	done := make(chan struct{})
	go func() {
		select {
		case <-l.stopChan:
			// put the stop back for run's outer loop, then break the read
			l.stopChan <- true
			conn.Close()
		case <-done:
		}
	}()
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("🔌 Order status stream closed: %v", err)
			return
		}
		l.handleMessage(data)
	}
}

// handleMessage dispatches recognized message types into the store
func (l *StatusListener) handleMessage(data []byte) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		log.Printf("❌ Error unmarshaling status message: %v", err)
		return
	}

	switch message.Type {
	case "order_status":
		var update StatusUpdate
		if err := json.Unmarshal(message.Data, &update); err != nil {
			log.Printf("❌ Error unmarshaling status update: %v", err)
			return
		}
		log.Printf("📡 Order %d item %d moved to %s", update.OrderID, update.ItemID, update.Status)
		l.store.Dispatch(store.UpdateOrderStatus{
			OrderID:   update.OrderID,
			ItemID:    update.ItemID,
			NewStatus: update.Status,
		})
	case "ping":
		// keepalive, nothing to do
	default:
		log.Printf("⚠️ Unknown order stream message type: %s", message.Type)
	}
}
