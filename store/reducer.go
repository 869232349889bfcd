package store

import (
	"service-booking-client/models"
)

// Reduce applies one action to the state and returns the next state. It is pure:
// no side effects, and the input state (including every nested slice) is never
// mutated. Branches that change a collection allocate a fresh slice; everything
// untouched keeps its identity.
func Reduce(state State, action Action) State {
	switch a := action.(type) {

	case SetLoading:
		state.Loading = a.Value
		if a.Value {
			state.Error = ""
		}
		return state

	case SetOrdersLoading:
		state.OrdersLoading = a.Value
		return state

	case SetOrderDetailLoading:
		state.OrderDetailLoading = a.Value
		return state

	case SetRefreshing:
		state.Refreshing = a.Value
		return state

	case SetOrders:
		incoming := a.Orders
		if incoming == nil {
			// Upstream may hand us nil on partial failures; the UI must still
			// receive a renderable collection.
			incoming = []models.NormalizedOrder{}
		}

		var next []models.NormalizedOrder
		if a.Append {
			existing := state.Orders(a.Bucket)
			next = make([]models.NormalizedOrder, 0, len(existing)+len(incoming))
			next = append(next, existing...)
			next = append(next, incoming...)
		} else {
			next = make([]models.NormalizedOrder, len(incoming))
			copy(next, incoming)
		}
		state = state.withOrders(a.Bucket, next)

		cursors := copyCursors(state.Cursors)
		page := a.Page
		if page < 1 {
			page = 1
		}
		cursors[a.Bucket] = Cursor{Page: page, HasMore: len(incoming) > 0}
		state.Cursors = cursors

		state.Loading = false
		state.OrdersLoading = false
		state.Refreshing = false
		state.Error = ""
		return state

	case SetCurrentOrder:
		state.CurrentOrder = a.Order
		state.OrderDetailLoading = false
		state.Loading = false
		state.Error = ""
		return state

	case ClearCurrentOrder:
		state.CurrentOrder = nil
		state.OrderDetailLoading = true
		return state

	case SetError:
		state.Error = a.Message
		state.Loading = false
		state.OrdersLoading = false
		state.OrderDetailLoading = false
		return state

	case ResetError:
		state.Error = ""
		return state

	case ToggleAddressDetails:
		state.ShowAddressDetails = !state.ShowAddressDetails
		return state

	case ToggleIssueField:
		state.ShowIssueField = !state.ShowIssueField
		return state

	case UpdateOrderStatus:
		if state.CurrentOrder != nil {
			if patched, ok := patchRecord(*state.CurrentOrder, a.ItemID, a.NewStatus); ok {
				state.CurrentOrder = &patched
			}
		}
		for _, bucket := range Buckets {
			if patched, ok := patchCollection(state.Orders(bucket), a.OrderID, a.ItemID, a.NewStatus); ok {
				state = state.withOrders(bucket, patched)
			}
		}
		return state
	}

	return state
}

// patchCollection returns a copy of the collection with the matching item's status
// replaced. The second return is false when nothing matched, in which case the
// original slice should be kept so its identity is preserved.
func patchCollection(orders []models.NormalizedOrder, orderID, itemID uint, status models.OrderStatus) ([]models.NormalizedOrder, bool) {
	matchIndex := -1
	for i := range orders {
		if orders[i].OrderID != orderID {
			continue
		}
		if recordHasItem(orders[i], itemID) {
			matchIndex = i
			break
		}
	}
	if matchIndex < 0 {
		return nil, false
	}

	next := make([]models.NormalizedOrder, len(orders))
	copy(next, orders)
	patched, _ := patchRecord(next[matchIndex], itemID, status)
	next[matchIndex] = patched
	return next, true
}

// patchRecord replaces only the status of the matching item, leaving every other
// field of the record untouched. The record's own flattened status mirror is kept
// in sync when it points at the same item.
func patchRecord(record models.NormalizedOrder, itemID uint, status models.OrderStatus) (models.NormalizedOrder, bool) {
	if !recordHasItem(record, itemID) {
		return record, false
	}

	items := make([]models.Item, len(record.Items))
	copy(items, record.Items)
	for i := range items {
		if items[i].ID == itemID {
			items[i].Status = status
		}
	}
	record.Items = items

	if record.Kind == models.OrderKindWithItem && record.ItemID == itemID {
		record.Status = status
	}
	return record, true
}

func recordHasItem(record models.NormalizedOrder, itemID uint) bool {
	for i := range record.Items {
		if record.Items[i].ID == itemID {
			return true
		}
	}
	return false
}

func copyCursors(cursors map[Bucket]Cursor) map[Bucket]Cursor {
	next := make(map[Bucket]Cursor, len(cursors))
	for bucket, cursor := range cursors {
		next[bucket] = cursor
	}
	return next
}
