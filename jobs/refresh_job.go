package jobs

import (
	"context"
	"log"
	"time"

	"service-booking-client/store"
)

// RefreshJob keeps the status collections warm by refreshing all four buckets
// on a fixed interval while the app is in the foreground
type RefreshJob struct {
	store    *store.Store
	interval time.Duration
	stopChan chan bool
}

// NewRefreshJob creates a refresh job for the given store
func NewRefreshJob(s *store.Store, interval time.Duration) *RefreshJob {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	return &RefreshJob{
		store:    s,
		interval: interval,
		stopChan: make(chan bool),
	}
}

// Start begins the refresh job
func (j *RefreshJob) Start() {
	go j.run()
	log.Println("🚀 Order refresh job started")
}

// Stop stops the refresh job
func (j *RefreshJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Order refresh job stopped")
}

// run executes the refresh job
func (j *RefreshJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.refresh()
		case <-j.stopChan:
			return
		}
	}
}

// refresh runs one bounded refresh pass
func (j *RefreshJob) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), j.interval)
	defer cancel()

	result := j.store.RefreshOrders(ctx)
	if !result.Success {
		log.Printf("⚠️ Background refresh failed: %s", result.Message)
	}
}
