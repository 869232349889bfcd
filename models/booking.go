package models

import (
	"time"
)

// OrderStatus represents the display status of a booked service item
type OrderStatus string

const (
	StatusInitiated OrderStatus = "initiated"
	StatusUpcoming  OrderStatus = "upcoming"
	StatusAccepted  OrderStatus = "accepted"
	StatusRunning   OrderStatus = "running"
	StatusPaused    OrderStatus = "paused"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// AllowedTransitions defines the legal status transitions for an item.
// completed and cancelled are terminal.
var AllowedTransitions = map[OrderStatus][]OrderStatus{
	StatusInitiated: {StatusAccepted, StatusCancelled},
	StatusUpcoming:  {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusRunning, StatusCancelled},
	StatusRunning:   {StatusCompleted, StatusCancelled, StatusPaused},
	StatusPaused:    {StatusRunning, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether from -> to is a legal status transition
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// CanCancel reports whether cancellation may be offered for the given status
func CanCancel(status OrderStatus) bool {
	return status == StatusAccepted || status == StatusRunning
}

// CanReschedule reports whether rescheduling may be offered for the given status
func CanReschedule(status OrderStatus) bool {
	return status == StatusAccepted
}

// IsTerminal reports whether the status admits no further transitions
func IsTerminal(status OrderStatus) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// Provider is the professional assigned to an item
type Provider struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	ImageURL string `json:"image_url"`
}

// RateCard describes the priced service an item was booked from
type RateCard struct {
	CategoryName    string  `json:"category_name"`
	SubcategoryName string  `json:"subcategory_name"`
	ImageURL        string  `json:"image_url"`
	Price           float64 `json:"price"`
	StrikePrice     float64 `json:"strike_price"`
}

// Address is the service location attached to an item
type Address struct {
	ID      uint   `json:"id"`
	Line    string `json:"line"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// Cancellation records who cancelled an item and why
type Cancellation struct {
	By      string `json:"by"` // "customer", "provider" or "system"
	Reason  string `json:"reason"`
	Comment string `json:"comment"`
}

// ServiceOTP carries the start/end one-time codes exchanged with the provider
type ServiceOTP struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ItemFeedback is the customer's rating for a completed item
type ItemFeedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// IssueReport is a problem the customer filed against an item
type IssueReport struct {
	Issue      string     `json:"issue"`
	ReportedAt *time.Time `json:"reported_at"`
}

// Item is one bookable service instance within a Booking
type Item struct {
	ID           uint          `json:"id"`
	Status       OrderStatus   `json:"status"`
	Provider     *Provider     `json:"provider,omitempty"`
	RateCard     RateCard      `json:"rate_card"`
	Address      *Address      `json:"address,omitempty"`
	Date         time.Time     `json:"date"`
	TimeFrom     string        `json:"time_from"`
	TimeTo       string        `json:"time_to"`
	Cancellation *Cancellation `json:"cancellation,omitempty"`
	OTP          *ServiceOTP   `json:"otp,omitempty"`
	Feedback     *ItemFeedback `json:"feedback,omitempty"`
	Issue        *IssueReport  `json:"issue,omitempty"`
}

// Booking is one checkout transaction as issued by the backend.
// A booking may contain several items, each bookable and cancellable on its own.
type Booking struct {
	ID                uint      `json:"id"`
	Items             []Item    `json:"items"`
	Discount          float64   `json:"discount"`
	WalletUsed        float64   `json:"wallet_used"`
	ConvenienceCharge float64   `json:"convenience_charge"`
	Tip               float64   `json:"tip"`
	Donation          float64   `json:"donation"`
	VIPDiscount       float64   `json:"vip_discount"`
	TotalAmount       float64   `json:"total_amount"`
	PaymentStatus     string    `json:"payment_status"`
	PaymentType       string    `json:"payment_type"`
	IsPartialPayment  bool      `json:"is_partial_payment"`
	PartialPaidAmount float64   `json:"partial_paid_amount"`
	RemainingAmount   float64   `json:"remaining_amount"`
	InvoiceRef        string    `json:"invoice_ref"`
	CreatedAt         time.Time `json:"created_at"`
}
