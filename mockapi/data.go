package mockapi

import (
	"sync"

	"service-booking-client/models"
)

// Dataset is the mock backend's in-memory booking table. The real backend keeps
// this in Postgres; the mock stays in memory so the test suite is hermetic.
type Dataset struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewDataset creates a dataset seeded with the given bookings
func NewDataset(bookings []models.Booking) *Dataset {
	return &Dataset{bookings: bookings}
}

// ListByStatus returns the page of bookings that contain at least one item in the
// given display status
func (d *Dataset) ListByStatus(status models.OrderStatus, page, limit int) []models.Booking {
	d.mu.RLock()
	defer d.mu.RUnlock()

	matched := make([]models.Booking, 0)
	for _, booking := range d.bookings {
		for _, item := range booking.Items {
			if item.Status == status {
				matched = append(matched, booking)
				break
			}
		}
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(matched) {
		return []models.Booking{}
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end]
}

// Get returns one booking by id
func (d *Dataset) Get(bookingID uint) (models.Booking, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, booking := range d.bookings {
		if booking.ID == bookingID {
			return booking, true
		}
	}
	return models.Booking{}, false
}

// FindItem locates an item across all bookings
func (d *Dataset) FindItem(itemID uint) (models.Booking, models.Item, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, booking := range d.bookings {
		for _, item := range booking.Items {
			if item.ID == itemID {
				return booking, item, true
			}
		}
	}
	return models.Booking{}, models.Item{}, false
}

// UpdateItem applies fn to the matching item in place
func (d *Dataset) UpdateItem(itemID uint, fn func(*models.Item)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for bi := range d.bookings {
		for ii := range d.bookings[bi].Items {
			if d.bookings[bi].Items[ii].ID == itemID {
				fn(&d.bookings[bi].Items[ii])
				return true
			}
		}
	}
	return false
}

// UpdateBooking applies fn to the matching booking in place
func (d *Dataset) UpdateBooking(bookingID uint, fn func(*models.Booking)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.bookings {
		if d.bookings[i].ID == bookingID {
			fn(&d.bookings[i])
			return true
		}
	}
	return false
}
