// Package ports defines the contracts between the order manager's core and
// its infrastructure.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderStore persists whole sequences of orders under a store name.
// Each Save overwrites the previous content of the named store.
type OrderStore interface {
	// Load returns the orders kept under name. A missing or unreadable store
	// yields an empty sequence; Load never fails.
	Load(ctx context.Context, name string) []*order.Order

	// Save replaces the content of the named store with orders, keeping their order.
	Save(ctx context.Context, name string, orders []*order.Order) error
}
