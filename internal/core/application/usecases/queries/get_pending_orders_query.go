package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery retrieves every pending order in arrival order.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	handler := NewGetPendingOrdersQueryHandler(pending)
//
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list pending orders: %w", err)
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a parameterless query.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}
