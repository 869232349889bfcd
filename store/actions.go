package store

import (
	"service-booking-client/models"
)

// Action is a state change request handled by Reduce. Every action is a plain
// value; dispatching is the only way state ever changes.
type Action interface {
	name() string
}

// SetLoading toggles the general loading flag; turning it on clears the error
type SetLoading struct {
	Value bool
}

func (SetLoading) name() string { return "SET_LOADING" }

// SetOrdersLoading toggles the list-loading flag
type SetOrdersLoading struct {
	Value bool
}

func (SetOrdersLoading) name() string { return "SET_ORDERS_LOADING" }

// SetOrderDetailLoading toggles the detail-loading flag
type SetOrderDetailLoading struct {
	Value bool
}

func (SetOrderDetailLoading) name() string { return "SET_ORDER_DETAIL_LOADING" }

// SetRefreshing toggles the pull-to-refresh flag
type SetRefreshing struct {
	Value bool
}

func (SetRefreshing) name() string { return "SET_REFRESHING" }

// SetOrders replaces or appends to one status collection. A nil Orders slice is
// coerced to empty by the reducer; upstream code may pass nil on partial failures.
type SetOrders struct {
	Bucket Bucket
	Orders []models.NormalizedOrder
	Append bool
	Page   int
}

func (SetOrders) name() string { return "SET_ORDERS" }

// SetCurrentOrder sets the detail view's order and clears detail loading
type SetCurrentOrder struct {
	Order *models.NormalizedOrder
}

func (SetCurrentOrder) name() string { return "SET_CURRENT_ORDER" }

// ClearCurrentOrder drops the detail view's order and marks a new detail load as
// pending, so the previous order never flashes while the next one is fetched
type ClearCurrentOrder struct{}

func (ClearCurrentOrder) name() string { return "CLEAR_CURRENT_ORDER" }

// SetError records a failure and ends the current attempt's loading flags
type SetError struct {
	Message string
}

func (SetError) name() string { return "SET_ERROR" }

// ResetError clears the error only
type ResetError struct{}

func (ResetError) name() string { return "RESET_ERROR" }

// ToggleAddressDetails flips the address details panel
type ToggleAddressDetails struct{}

func (ToggleAddressDetails) name() string { return "TOGGLE_ADDRESS_DETAILS" }

// ToggleIssueField flips the issue input field
type ToggleIssueField struct{}

func (ToggleIssueField) name() string { return "TOGGLE_ISSUE_FIELD" }

// UpdateOrderStatus patches the status of one item wherever it appears: in the
// current order and in every status collection. The item stays in its old bucket
// until the next full refresh; this is a targeted patch, not a refetch.
type UpdateOrderStatus struct {
	OrderID   uint
	ItemID    uint
	NewStatus models.OrderStatus
}

func (UpdateOrderStatus) name() string { return "UPDATE_ORDER_STATUS" }
