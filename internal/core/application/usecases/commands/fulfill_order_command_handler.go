package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// FulfillOrderCommandHandler serves a pending order: it moves the order to the
// fulfilled store and rewrites both stores.
//
// Example:
//
//	handler := NewFulfillOrderCommandHandler(store, pending, names)
//	cmd, _ := NewFulfillOrderCommand(1)
//	served, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoPendingOrders) {
//	    fmt.Println("no pending orders")
//	}
type FulfillOrderCommandHandler struct {
	store     ports.OrderStore
	pending   *order.PendingList
	names     StoreNames
	fulfiller services.OrderFulfiller
}

// NewFulfillOrderCommandHandler creates a handler bound to the session's pending list.
func NewFulfillOrderCommandHandler(
	store ports.OrderStore,
	pending *order.PendingList,
	names StoreNames,
) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		store:     store,
		pending:   pending,
		names:     names,
		fulfiller: services.NewOrderFulfiller(),
	}
}

// Handle moves the selected order and returns it.
//
// The fulfilled store is written first. If that fails the order goes back to
// its position in the pending list. If only the pending store fails to save,
// the order stays fulfilled and the error is returned.
// An empty pending list returns services.ErrNoPendingOrders without reading
// or writing any store.
func (h *FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if h.pending.IsEmpty() {
		return nil, services.ErrNoPendingOrders
	}

	fulfilled := h.store.Load(ctx, h.names.Fulfilled)

	served, fulfilled, err := h.fulfiller.Fulfill(h.pending, fulfilled, cmd.Position())
	if err != nil {
		return nil, err
	}

	if err = h.store.Save(ctx, h.names.Fulfilled, fulfilled); err != nil {
		_ = h.fulfiller.Revert(h.pending, served, cmd.Position())
		return nil, fmt.Errorf("persist fulfilled orders: %w", err)
	}

	if err = h.store.Save(ctx, h.names.Pending, h.pending.Orders()); err != nil {
		return nil, fmt.Errorf("order %s fulfilled but pending orders not persisted: %w", served.ID(), err)
	}

	return served, nil
}
