package mockapi

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"service-booking-client/models"
)

// Server is an in-memory stand-in for the booking backend. It implements the
// same endpoints and envelope the production API does, so the client and store
// can be exercised end to end without a network.
type Server struct {
	engine *gin.Engine
	data   *Dataset
	hub    *Hub
	secret string
}

// NewServer creates a mock backend seeded with the default fixtures
func NewServer(secret string) *Server {
	return NewServerWithData(secret, NewDataset(SeedBookings()))
}

// NewServerWithData creates a mock backend over the given dataset
func NewServerWithData(secret string, data *Dataset) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		engine: gin.New(),
		data:   data,
		hub:    NewHub(),
		secret: secret,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(CORSMiddleware())

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Mock booking API is running",
			"time":    time.Now().UTC(),
		})
	})

	api := s.engine.Group("/api/v1")
	api.GET("/ws/orders", s.handleOrderSocket)

	protected := api.Group("")
	protected.Use(AuthMiddleware(secret))
	{
		protected.GET("/orders", s.listOrders)
		protected.GET("/orders/:id", s.getOrder)
		protected.POST("/orders/items/:id/cancel", s.cancelItem)
		protected.POST("/orders/items/:id/reschedule", s.rescheduleItem)
		protected.POST("/orders/items/:id/feedback", s.submitFeedback)
		protected.POST("/orders/items/:id/issue", s.reportIssue)
		protected.POST("/orders/payments/partial", s.partialPayment)
	}

	return s
}

// Router exposes the underlying handler for httptest servers
func (s *Server) Router() http.Handler {
	return s.engine
}

// Hub exposes the status broadcaster so the demo can push updates
func (s *Server) Hub() *Hub {
	return s.hub
}

// Data exposes the dataset so the demo and tests can inspect or mutate fixtures
func (s *Server) Data() *Dataset {
	return s.data
}

// BroadcastStatus pushes an item status change to websocket clients and applies
// it to the dataset, simulating backend-side progress
func (s *Server) BroadcastStatus(orderID, itemID uint, status models.OrderStatus) {
	s.data.UpdateItem(itemID, func(item *models.Item) {
		item.Status = status
	})
	s.hub.BroadcastStatus(orderID, itemID, status)
}

// Run starts the mock backend on the given port
func (s *Server) Run(port string) error {
	log.Printf("🚀 Mock booking API starting on port %s", port)
	return s.engine.Run("0.0.0.0:" + port)
}
