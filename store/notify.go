package store

import (
	"log"
	"time"
)

// Notifier receives the transient success/error notifications the operations
// surface alongside state changes
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the application log
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	log.Printf("✅ %s", message)
}

func (LogNotifier) Error(message string) {
	log.Printf("❌ %s", message)
}

// Notification is one transient toast for UI consumers
type Notification struct {
	Level     string    `json:"level"` // "success" or "error"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChannelNotifier delivers notifications over a buffered channel. Delivery is
// non-blocking: when the buffer is full the notification is dropped rather than
// stalling an operation.
type ChannelNotifier struct {
	C chan Notification
}

// NewChannelNotifier creates a notifier with the given buffer size
func NewChannelNotifier(buffer int) *ChannelNotifier {
	return &ChannelNotifier{C: make(chan Notification, buffer)}
}

func (n *ChannelNotifier) Success(message string) {
	n.send(Notification{Level: "success", Message: message, Timestamp: time.Now()})
}

func (n *ChannelNotifier) Error(message string) {
	n.send(Notification{Level: "error", Message: message, Timestamp: time.Now()})
}

func (n *ChannelNotifier) send(notification Notification) {
	select {
	case n.C <- notification:
	default:
		log.Printf("⚠️ Notification buffer full, dropping: %s", notification.Message)
	}
}
