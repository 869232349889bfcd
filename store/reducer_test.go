package store

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-booking-client/models"
)

func record(orderID, itemID uint, status models.OrderStatus) models.NormalizedOrder {
	item := models.Item{ID: itemID, Status: status}
	return models.NormalizedOrder{
		Kind:      models.OrderKindWithItem,
		OrderID:   orderID,
		BookingID: orderID,
		ItemID:    itemID,
		Status:    status,
		Items:     []models.Item{item},
	}
}

func slicePtr(orders []models.NormalizedOrder) uintptr {
	return reflect.ValueOf(orders).Pointer()
}

func TestReduceSetLoadingClearsError(t *testing.T) {
	state := NewState()
	state.Error = "previous failure"

	next := Reduce(state, SetLoading{Value: true})

	assert.True(t, next.Loading)
	assert.Empty(t, next.Error)

	next = Reduce(next, SetLoading{Value: false})
	assert.False(t, next.Loading)
}

func TestReduceLoadingFlagsAreIndependent(t *testing.T) {
	state := NewState()

	state = Reduce(state, SetOrdersLoading{Value: true})
	state = Reduce(state, SetOrderDetailLoading{Value: true})
	state = Reduce(state, SetRefreshing{Value: true})

	assert.False(t, state.Loading)
	assert.True(t, state.OrdersLoading)
	assert.True(t, state.OrderDetailLoading)
	assert.True(t, state.Refreshing)

	// turning one off leaves the others alone
	state = Reduce(state, SetOrderDetailLoading{Value: false})
	assert.True(t, state.OrdersLoading)
	assert.True(t, state.Refreshing)
}

func TestReduceSetOrdersReplace(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetOrders{
		Bucket: BucketAccepted,
		Orders: []models.NormalizedOrder{record(1, 10, models.StatusAccepted)},
		Page:   1,
	})

	a := record(2, 20, models.StatusAccepted)
	b := record(3, 30, models.StatusAccepted)
	next := Reduce(state, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{a, b}, Page: 1})

	require.Len(t, next.AcceptedOrders, 2)
	assert.Equal(t, uint(2), next.AcceptedOrders[0].OrderID)
	assert.Equal(t, uint(3), next.AcceptedOrders[1].OrderID)
}

func TestReduceSetOrdersAppendKeepsOrderAndOtherBuckets(t *testing.T) {
	a := record(1, 10, models.StatusAccepted)
	b := record(2, 20, models.StatusAccepted)
	c := record(3, 30, models.StatusAccepted)

	state := NewState()
	state = Reduce(state, SetOrders{Bucket: BucketUpcoming, Orders: []models.NormalizedOrder{record(9, 90, models.StatusUpcoming)}, Page: 1})
	state = Reduce(state, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{a, b}, Page: 1})

	upcomingBefore := slicePtr(state.UpcomingOrders)
	completedBefore := slicePtr(state.CompletedOrders)
	cancelledBefore := slicePtr(state.CancelledOrders)

	next := Reduce(state, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{c}, Append: true, Page: 2})

	require.Len(t, next.AcceptedOrders, 3)
	assert.Equal(t, uint(1), next.AcceptedOrders[0].OrderID)
	assert.Equal(t, uint(2), next.AcceptedOrders[1].OrderID)
	assert.Equal(t, uint(3), next.AcceptedOrders[2].OrderID)

	// appended fetch did not copy the other three collections
	assert.Equal(t, upcomingBefore, slicePtr(next.UpcomingOrders))
	assert.Equal(t, completedBefore, slicePtr(next.CompletedOrders))
	assert.Equal(t, cancelledBefore, slicePtr(next.CancelledOrders))

	// input state untouched
	assert.Len(t, state.AcceptedOrders, 2)
}

func TestReduceSetOrdersCoercesNil(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetOrders{Bucket: BucketCancelled, Orders: []models.NormalizedOrder{record(1, 10, models.StatusCancelled)}, Page: 1})

	next := Reduce(state, SetOrders{Bucket: BucketCancelled, Orders: nil, Page: 1})

	require.NotNil(t, next.CancelledOrders)
	assert.Empty(t, next.CancelledOrders)
}

func TestReduceSetOrdersClearsFlags(t *testing.T) {
	state := NewState()
	state.Loading = true
	state.OrdersLoading = true
	state.Refreshing = true
	state.Error = "stale failure"

	next := Reduce(state, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{}, Page: 1})

	assert.False(t, next.Loading)
	assert.False(t, next.OrdersLoading)
	assert.False(t, next.Refreshing)
	assert.Empty(t, next.Error)
}

func TestReduceSetOrdersTracksCursor(t *testing.T) {
	state := NewState()

	next := Reduce(state, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{record(1, 10, models.StatusAccepted)}, Page: 3})
	assert.Equal(t, 3, next.Cursors[BucketAccepted].Page)
	assert.True(t, next.Cursors[BucketAccepted].HasMore)

	next = Reduce(next, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{}, Page: 4})
	assert.Equal(t, 4, next.Cursors[BucketAccepted].Page)
	assert.False(t, next.Cursors[BucketAccepted].HasMore)
}

func TestReduceCurrentOrderLifecycle(t *testing.T) {
	state := NewState()
	detail := record(5, 50, models.StatusRunning)

	next := Reduce(state, SetCurrentOrder{Order: &detail})
	require.NotNil(t, next.CurrentOrder)
	assert.False(t, next.OrderDetailLoading)
	assert.Empty(t, next.Error)

	next = Reduce(next, ClearCurrentOrder{})
	assert.Nil(t, next.CurrentOrder)
	assert.True(t, next.OrderDetailLoading)
}

func TestReduceSetErrorEndsAttempt(t *testing.T) {
	state := NewState()
	state.Loading = true
	state.OrdersLoading = true
	state.OrderDetailLoading = true

	next := Reduce(state, SetError{Message: "something broke"})

	assert.Equal(t, "something broke", next.Error)
	assert.False(t, next.Loading)
	assert.False(t, next.OrdersLoading)
	assert.False(t, next.OrderDetailLoading)

	next = Reduce(next, ResetError{})
	assert.Empty(t, next.Error)
}

func TestReduceToggles(t *testing.T) {
	state := NewState()

	state = Reduce(state, ToggleAddressDetails{})
	assert.True(t, state.ShowAddressDetails)
	state = Reduce(state, ToggleAddressDetails{})
	assert.False(t, state.ShowAddressDetails)

	state = Reduce(state, ToggleIssueField{})
	assert.True(t, state.ShowIssueField)
	assert.False(t, state.ShowAddressDetails)
}

func TestReduceUpdateOrderStatusPatchesEverywhere(t *testing.T) {
	target := record(1, 5, models.StatusAccepted)
	target.Tip = 25 // unrelated field that must survive the patch
	bystander := record(2, 6, models.StatusAccepted)
	detail := record(1, 5, models.StatusAccepted)

	state := NewState()
	state = Reduce(state, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{target, bystander}, Page: 1})
	state = Reduce(state, SetCurrentOrder{Order: &detail})

	next := Reduce(state, UpdateOrderStatus{OrderID: 1, ItemID: 5, NewStatus: models.StatusCancelled})

	// patched in the collection
	require.Len(t, next.AcceptedOrders, 2)
	assert.Equal(t, models.StatusCancelled, next.AcceptedOrders[0].Status)
	assert.Equal(t, models.StatusCancelled, next.AcceptedOrders[0].Items[0].Status)
	// everything else on the record is untouched
	assert.Equal(t, 25.0, next.AcceptedOrders[0].Tip)
	// the bystander is untouched
	assert.Equal(t, models.StatusAccepted, next.AcceptedOrders[1].Status)

	// patched in the current order too
	require.NotNil(t, next.CurrentOrder)
	assert.Equal(t, models.StatusCancelled, next.CurrentOrder.Status)
	assert.Equal(t, models.StatusCancelled, next.CurrentOrder.Items[0].Status)

	// the item stays in its old bucket until the next refresh
	assert.Empty(t, next.CancelledOrders)

	// input state not mutated
	assert.Equal(t, models.StatusAccepted, state.AcceptedOrders[0].Status)
	assert.Equal(t, models.StatusAccepted, state.AcceptedOrders[0].Items[0].Status)
}

func TestReduceUpdateOrderStatusLeavesUnmatchedBucketsAlone(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{record(1, 5, models.StatusAccepted)}, Page: 1})
	state = Reduce(state, SetOrders{Bucket: BucketCompleted, Orders: []models.NormalizedOrder{record(3, 7, models.StatusCompleted)}, Page: 1})

	completedBefore := slicePtr(state.CompletedOrders)
	next := Reduce(state, UpdateOrderStatus{OrderID: 1, ItemID: 5, NewStatus: models.StatusCancelled})

	// the completed bucket had no match, so it was not copied
	assert.Equal(t, completedBefore, slicePtr(next.CompletedOrders))
	// a fresh slice was allocated for the patched bucket
	assert.NotEqual(t, slicePtr(state.AcceptedOrders), slicePtr(next.AcceptedOrders))
}

func TestReduceUpdateOrderStatusRequiresMatchingOrder(t *testing.T) {
	// item id matches but the order id does not; the record must not be patched
	state := NewState()
	state = Reduce(state, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{record(1, 5, models.StatusAccepted)}, Page: 1})

	next := Reduce(state, UpdateOrderStatus{OrderID: 99, ItemID: 5, NewStatus: models.StatusCancelled})

	assert.Equal(t, models.StatusAccepted, next.AcceptedOrders[0].Status)
}

func TestReduceUnknownActionReturnsStateUnchanged(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetOrders{Bucket: BucketAccepted, Orders: []models.NormalizedOrder{record(1, 5, models.StatusAccepted)}, Page: 1})

	next := Reduce(state, fakeAction{})

	assert.Equal(t, slicePtr(state.AcceptedOrders), slicePtr(next.AcceptedOrders))
	assert.Equal(t, state.Error, next.Error)
}

type fakeAction struct{}

func (fakeAction) name() string { return "FAKE" }
