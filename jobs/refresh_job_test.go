package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-booking-client/models"
	"service-booking-client/store"
)

type countingAPI struct {
	calls atomic.Int32
}

func (c *countingAPI) ListByStatus(context.Context, models.OrderStatus, int, int) ([]models.Booking, error) {
	c.calls.Add(1)
	return []models.Booking{}, nil
}

func (c *countingAPI) GetDetail(context.Context, uint, uint) (*models.Booking, error) {
	return nil, nil
}

func (c *countingAPI) Cancel(context.Context, uint, string) (string, error) { return "", nil }

func (c *countingAPI) Reschedule(context.Context, uint, string, string, string, string) (string, error) {
	return "", nil
}

func (c *countingAPI) SubmitFeedback(context.Context, uint, int, string) (string, error) {
	return "", nil
}

func (c *countingAPI) ReportIssue(context.Context, uint, string) (string, error) { return "", nil }

func (c *countingAPI) ProcessPartialPayment(context.Context, models.PartialPaymentParams) (string, error) {
	return "", nil
}

func TestRefreshJobTicksAndStops(t *testing.T) {
	api := &countingAPI{}
	s := store.New(api)

	job := NewRefreshJob(s, 20*time.Millisecond)
	job.Start()

	// each tick refreshes all four buckets
	require.Eventually(t, func() bool {
		return api.calls.Load() >= 8
	}, 2*time.Second, 10*time.Millisecond)

	job.Stop()
	settled := api.calls.Load()
	time.Sleep(100 * time.Millisecond)
	assert.LessOrEqual(t, api.calls.Load(), settled+4, "no new refresh passes after Stop")
}

func TestRefreshJobDefaultInterval(t *testing.T) {
	job := NewRefreshJob(store.New(&countingAPI{}), 0)
	assert.Equal(t, 2*time.Minute, job.interval)
}
