package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// GetPendingOrderQueryHandler finds a single pending order.
//
// Example:
//
//	query, _ := NewGetPendingOrderQuery(id)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // id is free
//	}
type GetPendingOrderQueryHandler struct {
	pending *order.PendingList
}

// NewGetPendingOrderQueryHandler creates a handler over the pending list.
func NewGetPendingOrderQueryHandler(pending *order.PendingList) GetPendingOrderQueryHandler {
	return GetPendingOrderQueryHandler{pending: pending}
}

// Handle returns errs.ObjectNotFoundError when no pending order has the id.
func (h GetPendingOrderQueryHandler) Handle(ctx context.Context, query GetPendingOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}
	if err := ctx.Err(); err != nil {
		return OrderView{}, err
	}

	o, ok := h.pending.Find(query.OrderID())
	if !ok {
		return OrderView{}, errs.NewObjectNotFoundError("order id", query.OrderID().String())
	}

	return NewOrderView(o), nil
}
