package services

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
)

// ErrNoPendingOrders is returned when the pending list is empty.
var ErrNoPendingOrders = errors.New("no pending orders")

// OrderFulfiller moves one order from the pending list to the fulfilled orders.
//
// Business rules:
//   - The order is chosen by its 1-based position in the pending list
//   - The remaining pending orders keep their relative order
//   - The fulfilled orders are append-only
//
// Example usage:
//
//	fulfiller := services.NewOrderFulfiller()
//	served, fulfilled, err := fulfiller.Fulfill(pending, fulfilled, 1)
//	if errors.Is(err, services.ErrNoPendingOrders) {
//	    return
//	}
type OrderFulfiller struct{}

// NewOrderFulfiller creates a new OrderFulfiller.
func NewOrderFulfiller() OrderFulfiller {
	return OrderFulfiller{}
}

// Fulfill removes the order at position from pending and returns it together
// with fulfilled extended by that order. On error neither collection changes.
func (f OrderFulfiller) Fulfill(
	pending *order.PendingList,
	fulfilled []*order.Order,
	position int,
) (*order.Order, []*order.Order, error) {
	if pending.IsEmpty() {
		return nil, fulfilled, ErrNoPendingOrders
	}

	served, err := pending.RemoveAt(position)
	if err != nil {
		return nil, fulfilled, err
	}

	extended := make([]*order.Order, 0, len(fulfilled)+1)
	extended = append(extended, fulfilled...)
	extended = append(extended, served)

	return served, extended, nil
}

// Revert puts a served order back at its former position in pending.
// Used when the move could not be persisted.
func (f OrderFulfiller) Revert(pending *order.PendingList, served *order.Order, position int) error {
	return pending.InsertAt(position, served)
}
