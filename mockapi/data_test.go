package mockapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-booking-client/models"
)

func TestDatasetListByStatusPagination(t *testing.T) {
	bookings := make([]models.Booking, 0, 5)
	for i := uint(1); i <= 5; i++ {
		bookings = append(bookings, models.Booking{
			ID:    i,
			Items: []models.Item{{ID: i * 10, Status: models.StatusAccepted}},
		})
	}
	data := NewDataset(bookings)

	first := data.ListByStatus(models.StatusAccepted, 1, 2)
	require.Len(t, first, 2)
	assert.Equal(t, uint(1), first[0].ID)

	third := data.ListByStatus(models.StatusAccepted, 3, 2)
	require.Len(t, third, 1)
	assert.Equal(t, uint(5), third[0].ID)

	beyond := data.ListByStatus(models.StatusAccepted, 4, 2)
	assert.Empty(t, beyond)

	assert.Empty(t, data.ListByStatus(models.StatusRunning, 1, 10))
}

func TestDatasetUpdateItem(t *testing.T) {
	data := NewDataset(SeedBookings())

	ok := data.UpdateItem(1001, func(item *models.Item) {
		item.Status = models.StatusRunning
	})
	require.True(t, ok)

	_, item, found := data.FindItem(1001)
	require.True(t, found)
	assert.Equal(t, models.StatusRunning, item.Status)

	assert.False(t, data.UpdateItem(999999, func(*models.Item) {}))
}
