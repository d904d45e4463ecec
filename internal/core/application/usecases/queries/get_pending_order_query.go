package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetPendingOrderQueryIsNotConstructed = errors.New(
		"GetPendingOrderQuery must be created via NewGetPendingOrderQuery constructor",
	)
)

// GetPendingOrderQuery looks up one pending order by id. Matching is
// case-insensitive.
type GetPendingOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetPendingOrderQuery creates a lookup for orderID.
func NewGetPendingOrderQuery(orderID kernel.OrderID) (GetPendingOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPendingOrderQuery{}, err
	}

	return GetPendingOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrderQueryIsNotConstructed)
}

// OrderID returns the id being looked up.
func (q GetPendingOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}
