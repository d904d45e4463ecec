package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// AddOrderCommandHandler appends a new order to the pending list and rewrites
// the pending store.
//
// Example:
//
//	handler := NewAddOrderCommandHandler(store, pending, names)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // duplicate order id, pending list unchanged
//	}
type AddOrderCommandHandler struct {
	store   ports.OrderStore
	pending *order.PendingList
	names   StoreNames
}

// NewAddOrderCommandHandler creates a handler bound to the session's pending list.
func NewAddOrderCommandHandler(
	store ports.OrderStore,
	pending *order.PendingList,
	names StoreNames,
) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		store:   store,
		pending: pending,
		names:   names,
	}
}

// Handle creates the order and persists the pending list.
// A duplicate id returns errs.ObjectAlreadyExistsError without touching the
// store. If the save fails the order is taken back out of the pending list.
func (h *AddOrderCommandHandler) Handle(ctx context.Context, cmd AddOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = h.pending.Add(o); err != nil {
		return nil, err
	}

	if err = h.store.Save(ctx, h.names.Pending, h.pending.Orders()); err != nil {
		_, _ = h.pending.RemoveAt(h.pending.Len())
		return nil, fmt.Errorf("persist pending orders: %w", err)
	}

	return o, nil
}
