package store

import (
	"service-booking-client/models"
)

// Bucket names one of the four independent status collections
type Bucket string

const (
	BucketAccepted  Bucket = "accepted"
	BucketUpcoming  Bucket = "upcoming"
	BucketCompleted Bucket = "completed"
	BucketCancelled Bucket = "cancelled"
)

// Buckets lists the four collections in refresh order
var Buckets = []Bucket{BucketAccepted, BucketUpcoming, BucketCompleted, BucketCancelled}

// Status returns the display status a bucket is keyed by
func (b Bucket) Status() models.OrderStatus {
	return models.OrderStatus(b)
}

// Cursor is the per-status pagination counter. Advancing Page is the caller's
// responsibility when requesting an append fetch.
type Cursor struct {
	Page    int
	HasMore bool
}

// State is the full order state tree. It is treated as immutable: the reducer
// returns a fresh value and copies every nested slice it touches, so snapshots
// handed to subscribers stay valid.
type State struct {
	AcceptedOrders  []models.NormalizedOrder
	UpcomingOrders  []models.NormalizedOrder
	CompletedOrders []models.NormalizedOrder
	CancelledOrders []models.NormalizedOrder

	Cursors map[Bucket]Cursor

	CurrentOrder *models.NormalizedOrder

	// Independent flags: list-loading, detail-loading and pull-to-refresh can be
	// concurrently true for different UI regions.
	Loading            bool
	OrdersLoading      bool
	OrderDetailLoading bool
	Refreshing         bool

	Error string

	// UI toggles
	ShowAddressDetails bool
	ShowIssueField     bool
}

// NewState returns the empty initial state
func NewState() State {
	cursors := make(map[Bucket]Cursor, len(Buckets))
	for _, bucket := range Buckets {
		cursors[bucket] = Cursor{Page: 1, HasMore: true}
	}
	return State{
		AcceptedOrders:  []models.NormalizedOrder{},
		UpcomingOrders:  []models.NormalizedOrder{},
		CompletedOrders: []models.NormalizedOrder{},
		CancelledOrders: []models.NormalizedOrder{},
		Cursors:         cursors,
	}
}

// Orders returns the collection for the given bucket
func (s State) Orders(bucket Bucket) []models.NormalizedOrder {
	switch bucket {
	case BucketAccepted:
		return s.AcceptedOrders
	case BucketUpcoming:
		return s.UpcomingOrders
	case BucketCompleted:
		return s.CompletedOrders
	case BucketCancelled:
		return s.CancelledOrders
	}
	return nil
}

// withOrders returns a copy of the state with the given bucket replaced
func (s State) withOrders(bucket Bucket, orders []models.NormalizedOrder) State {
	switch bucket {
	case BucketAccepted:
		s.AcceptedOrders = orders
	case BucketUpcoming:
		s.UpcomingOrders = orders
	case BucketCompleted:
		s.CompletedOrders = orders
	case BucketCancelled:
		s.CancelledOrders = orders
	}
	return s
}
