package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"service-booking-client/models"
)

func (s *Server) listOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	bookings := s.data.ListByStatus(status, page, limit)
	if len(bookings) == 0 {
		// The production backend answers a miss this way; clients render it as
		// an empty collection, not as an error.
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "No bookings found.",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bookings fetched successfully",
		"data":    bookings,
	})
}

func (s *Server) getOrder(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking id",
		})
		return
	}

	booking, found := s.data.Get(uint(bookingID))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking fetched successfully",
		"data":    booking,
	})
}

func (s *Server) cancelItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid item id"})
		return
	}

	var req models.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	booking, item, found := s.data.FindItem(uint(itemID))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking item not found"})
		return
	}
	if !models.CanCancel(item.Status) {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "This booking can no longer be cancelled",
		})
		return
	}

	s.data.UpdateItem(uint(itemID), func(item *models.Item) {
		item.Status = models.StatusCancelled
		item.Cancellation = &models.Cancellation{By: "customer", Reason: req.Reason}
	})
	s.hub.BroadcastStatus(booking.ID, uint(itemID), models.StatusCancelled)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully",
	})
}

func (s *Server) rescheduleItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid item id"})
		return
	}

	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	newDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil || newDate.Before(time.Now().Truncate(24*time.Hour)) {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "date must be a future day in YYYY-MM-DD format",
		})
		return
	}

	_, item, found := s.data.FindItem(uint(itemID))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking item not found"})
		return
	}
	if !models.CanReschedule(item.Status) {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Only accepted bookings can be rescheduled",
		})
		return
	}

	s.data.UpdateItem(uint(itemID), func(item *models.Item) {
		item.Date = newDate
		item.TimeFrom = req.TimeFrom
		item.TimeTo = req.TimeTo
		// a new visit means new service codes
		item.OTP = NewOTP()
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking rescheduled successfully",
	})
}

func (s *Server) submitFeedback(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid item id"})
		return
	}

	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	_, item, found := s.data.FindItem(uint(itemID))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking item not found"})
		return
	}
	if item.Status != models.StatusCompleted {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Feedback can only be submitted for completed bookings",
		})
		return
	}

	s.data.UpdateItem(uint(itemID), func(item *models.Item) {
		item.Feedback = &models.ItemFeedback{Rating: req.Rating, Comment: req.Comment}
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Feedback submitted successfully",
	})
}

func (s *Server) reportIssue(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid item id"})
		return
	}

	var req models.IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	now := time.Now()
	if !s.data.UpdateItem(uint(itemID), func(item *models.Item) {
		item.Issue = &models.IssueReport{Issue: req.Issue, ReportedAt: &now}
	}) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Issue reported successfully",
	})
}

func (s *Server) partialPayment(c *gin.Context) {
	var params models.PartialPaymentParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	booking, found := s.data.Get(params.BookingID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		return
	}
	if !booking.IsPartialPayment {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Booking does not accept partial payments",
		})
		return
	}
	if params.Amount <= 0 || params.Amount > booking.RemainingAmount {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Payment amount exceeds the remaining balance",
		})
		return
	}

	s.data.UpdateBooking(params.BookingID, func(b *models.Booking) {
		b.PartialPaidAmount += params.Amount
		b.RemainingAmount -= params.Amount
		b.PaymentType = params.PaymentType
		if b.RemainingAmount == 0 {
			b.PaymentStatus = "paid"
			b.IsPartialPayment = false
		}
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment processed successfully",
		"data": gin.H{
			"booking_id": params.BookingID,
			"amount":     params.Amount,
		},
	})
}
