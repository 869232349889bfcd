package models

import "time"

// OrderKind tags the two shapes a normalized order record can take.
// Consumers must switch on the kind instead of probing fields.
type OrderKind string

const (
	// OrderKindWithItem is the normal shape: one booking merged with one of its items
	OrderKindWithItem OrderKind = "with_item"
	// OrderKindBareBooking is the fallback shape for a booking that carried no items
	OrderKindBareBooking OrderKind = "bare_booking"
)

// NormalizedOrder is the flattened, UI-ready merge of one Booking and one of its
// Items. It is the unit stored in the per-status collections. BookingID is kept for
// API calls that operate at booking granularity, and OriginalBooking retains the
// untouched source for fields the flattening does not surface.
type NormalizedOrder struct {
	Kind OrderKind `json:"kind"`

	OrderID   uint `json:"order_id"`
	BookingID uint `json:"booking_id"`

	// Booking-level fields
	Discount          float64 `json:"discount"`
	WalletUsed        float64 `json:"wallet_used"`
	ConvenienceCharge float64 `json:"convenience_charge"`
	Tip               float64 `json:"tip"`
	Donation          float64 `json:"donation"`
	VIPDiscount       float64 `json:"vip_discount"`
	TotalAmount       float64 `json:"total_amount"`
	PaymentStatus     string  `json:"payment_status"`
	PaymentType       string  `json:"payment_type"`
	IsPartialPayment  bool    `json:"is_partial_payment"`
	PartialPaidAmount float64 `json:"partial_paid_amount"`
	RemainingAmount   float64 `json:"remaining_amount"`
	InvoiceRef        string  `json:"invoice_ref"`

	// Item-level fields, zero-valued on bare-booking records
	ItemID       uint          `json:"item_id"`
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

	// Items holds exactly the one merged item for consumers that still expect
	// an items slice; empty on bare-booking records.
	Items []Item `json:"items"`

	// OriginalBooking is the untouched source booking
	OriginalBooking *Booking `json:"original_booking,omitempty"`
}
