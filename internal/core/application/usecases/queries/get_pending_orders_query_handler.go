package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// GetPendingOrdersQueryHandler reads the session's pending list.
type GetPendingOrdersQueryHandler struct {
	pending *order.PendingList
}

// NewGetPendingOrdersQueryHandler creates a handler over the pending list.
func NewGetPendingOrdersQueryHandler(pending *order.PendingList) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{pending: pending}
}

// Handle returns the pending orders as read models. An empty list yields an
// empty, non-nil slice.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders := h.pending.Orders()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}

	return views, nil
}
