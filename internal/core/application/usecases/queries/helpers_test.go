package queries_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, id, customer string, items ...order.LineItem) *order.Order {
	t.Helper()
	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, customer, items)
	require.NoError(t, err)
	return o
}

func newItem(t *testing.T, name string, price, quantity int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(name, price, quantity)
	require.NoError(t, err)
	return item
}

func newPending(t *testing.T, orders ...*order.Order) *order.PendingList {
	t.Helper()
	list, dropped := order.NewPendingList(orders)
	require.Empty(t, dropped)
	return list
}
