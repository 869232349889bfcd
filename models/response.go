package models

import "encoding/json"

// ListResponse is the backend envelope for order listings
type ListResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DetailResponse is the backend envelope for a single order detail
type DetailResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *Booking `json:"data"`
}

// MutationResponse is the backend envelope for cancel/reschedule/feedback/issue/payment calls
type MutationResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// CancelRequest is the payload for cancelling an item
type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// RescheduleRequest is the payload for moving an item to a new slot
type RescheduleRequest struct {
	Date     string `json:"date" binding:"required"` // "2006-01-02"
	TimeFrom string `json:"time_from" binding:"required"`
	TimeTo   string `json:"time_to" binding:"required"`
	Reason   string `json:"reason"`
}

// FeedbackRequest is the payload for rating a completed item
type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// IssueRequest is the payload for reporting a problem with an item
type IssueRequest struct {
	Issue string `json:"issue" binding:"required"`
}

// PartialPaymentParams is the payload for settling part of a booking's remaining amount
type PartialPaymentParams struct {
	BookingID   uint    `json:"booking_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	PaymentType string  `json:"payment_type" binding:"required"`
}
