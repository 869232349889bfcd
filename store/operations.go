package store

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"service-booking-client/client"
	"service-booking-client/models"
	"service-booking-client/normalizer"
)

// Result is what every operation hands back to the UI. Operations never let an
// error cross into the caller; they normalize failures into the store's error
// field, a notification, and this value.
type Result struct {
	Success bool
	Message string
}

// FetchOrders loads one page of a status bucket. With append=false the bucket is
// replaced; with append=true the page is concatenated onto it. The backend's
// "No bookings found." miss response counts as empty success.
func (s *Store) FetchOrders(ctx context.Context, bucket Bucket, page int, appendPage bool) Result {
	if appendPage {
		s.Dispatch(SetOrdersLoading{Value: true})
	} else {
		s.Dispatch(SetLoading{Value: true})
	}

	bookings, err := s.api.ListByStatus(ctx, bucket.Status(), page, s.pageSize)
	if err != nil {
		if client.IsEmptyListing(err) {
			s.Dispatch(SetOrders{Bucket: bucket, Orders: []models.NormalizedOrder{}, Append: appendPage, Page: page})
			return Result{Success: true, Message: client.MsgNoBookings}
		}
		message := errorMessage(err)
		s.Dispatch(SetError{Message: message})
		s.notifier.Error(message)
		return Result{Success: false, Message: message}
	}

	orders := normalizer.Normalize(bookings)
	s.Dispatch(SetOrders{Bucket: bucket, Orders: orders, Append: appendPage, Page: page})
	return Result{Success: true}
}

// FetchOrderDetail loads one order's detail into CurrentOrder. The previous
// detail is cleared synchronously before the network call so stale data from one
// order is never shown while another loads. A response that arrives after a newer
// detail request began is dropped.
func (s *Store) FetchOrderDetail(ctx context.Context, orderID, itemID uint) Result {
	seq := atomic.AddUint64(&s.detailSeq, 1)
	s.Dispatch(ClearCurrentOrder{})

	booking, err := s.api.GetDetail(ctx, orderID, itemID)

	if atomic.LoadUint64(&s.detailSeq) != seq {
		log.Printf("⏭️ Detail response for order %d superseded by a newer request, dropping", orderID)
		return Result{Success: false, Message: "Superseded by a newer request"}
	}

	if err != nil {
		message := errorMessage(err)
		s.Dispatch(SetError{Message: message})
		s.notifier.Error(message)
		return Result{Success: false, Message: message}
	}

	record := normalizer.NormalizeDetail(*booking, itemID)
	s.Dispatch(SetCurrentOrder{Order: record})
	return Result{Success: true}
}

// RefreshOrders refetches all four status buckets concurrently. Each bucket
// settles on its own: one failing status leaves its collection at the prior value
// and does not block the other three. Refreshing turns false only after all four
// have settled.
func (s *Store) RefreshOrders(ctx context.Context) Result {
	s.Dispatch(SetRefreshing{Value: true})

	var wg sync.WaitGroup
	var succeeded atomic.Int32

	for _, bucket := range Buckets {
		wg.Add(1)
		go func(bucket Bucket) {
			defer wg.Done()

			bookings, err := s.api.ListByStatus(ctx, bucket.Status(), 1, s.pageSize)
			if err != nil {
				if client.IsEmptyListing(err) {
					s.Dispatch(SetOrders{Bucket: bucket, Orders: []models.NormalizedOrder{}, Page: 1})
					succeeded.Add(1)
					return
				}
				log.Printf("⚠️ Refresh for %s bucket failed: %v", bucket, err)
				return
			}

			s.Dispatch(SetOrders{Bucket: bucket, Orders: normalizer.Normalize(bookings), Page: 1})
			succeeded.Add(1)
		}(bucket)
	}

	wg.Wait()
	s.Dispatch(SetRefreshing{Value: false})

	if succeeded.Load() == 0 {
		message := client.MsgNetworkFailure
		s.Dispatch(SetError{Message: message})
		s.notifier.Error(message)
		return Result{Success: false, Message: message}
	}
	return Result{Success: true}
}

// CancelOrder cancels one item and patches its status to cancelled wherever it
// appears, so the UI reflects the cancellation without a round trip. The item
// stays in its old bucket until the next refresh.
func (s *Store) CancelOrder(ctx context.Context, orderID, itemID uint, reason string) Result {
	s.Dispatch(SetLoading{Value: true})

	message, err := s.api.Cancel(ctx, itemID, reason)
	if err != nil {
		return s.mutationFailed(err)
	}

	s.Dispatch(UpdateOrderStatus{OrderID: orderID, ItemID: itemID, NewStatus: models.StatusCancelled})
	s.Dispatch(SetLoading{Value: false})
	if message == "" {
		message = "Order cancelled successfully"
	}
	s.notifier.Success(message)
	return Result{Success: true, Message: message}
}

// RescheduleOrder moves one item to a new slot. The new OTPs and window come from
// the server, so no local patch is applied; the caller refetches the detail view
// when it needs the change reflected.
func (s *Store) RescheduleOrder(ctx context.Context, itemID uint, date, timeFrom, timeTo, reason string) Result {
	s.Dispatch(SetLoading{Value: true})

	message, err := s.api.Reschedule(ctx, itemID, date, timeFrom, timeTo, reason)
	if err != nil {
		return s.mutationFailed(err)
	}

	s.Dispatch(SetLoading{Value: false})
	if message == "" {
		message = "Order rescheduled successfully"
	}
	s.notifier.Success(message)
	return Result{Success: true, Message: message}
}

// SubmitFeedback rates a completed item. No local patch; the server owns the
// aggregated rating fields.
func (s *Store) SubmitFeedback(ctx context.Context, itemID uint, rating int, comment string) Result {
	s.Dispatch(SetLoading{Value: true})

	message, err := s.api.SubmitFeedback(ctx, itemID, rating, comment)
	if err != nil {
		return s.mutationFailed(err)
	}

	s.Dispatch(SetLoading{Value: false})
	if message == "" {
		message = "Feedback submitted successfully"
	}
	s.notifier.Success(message)
	return Result{Success: true, Message: message}
}

// ReportIssue files a problem report against an item
func (s *Store) ReportIssue(ctx context.Context, itemID uint, issue string) Result {
	s.Dispatch(SetLoading{Value: true})

	message, err := s.api.ReportIssue(ctx, itemID, issue)
	if err != nil {
		return s.mutationFailed(err)
	}

	s.Dispatch(SetLoading{Value: false})
	if message == "" {
		message = "Issue reported successfully"
	}
	s.notifier.Success(message)
	return Result{Success: true, Message: message}
}

// ProcessPartialPayment settles part of a booking's remaining amount. The updated
// amounts come back on the next refetch.
func (s *Store) ProcessPartialPayment(ctx context.Context, params models.PartialPaymentParams) Result {
	s.Dispatch(SetLoading{Value: true})

	message, err := s.api.ProcessPartialPayment(ctx, params)
	if err != nil {
		return s.mutationFailed(err)
	}

	s.Dispatch(SetLoading{Value: false})
	if message == "" {
		message = "Payment processed successfully"
	}
	s.notifier.Success(message)
	return Result{Success: true, Message: message}
}

// mutationFailed normalizes a failed mutation: error state set, loading cleared,
// notification surfaced, result returned
func (s *Store) mutationFailed(err error) Result {
	message := errorMessage(err)
	s.Dispatch(SetError{Message: message})
	s.notifier.Error(message)
	return Result{Success: false, Message: message}
}

// errorMessage extracts the user-facing message from a Data Client error
func errorMessage(err error) string {
	if apiErr, ok := err.(*client.APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return client.MsgNetworkFailure
}
