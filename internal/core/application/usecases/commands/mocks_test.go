package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Load(ctx context.Context, name string) []*order.Order {
	args := m.Called(ctx, name)
	return args.Get(0).([]*order.Order)
}

func (m *MockOrderStore) Save(ctx context.Context, name string, orders []*order.Order) error {
	args := m.Called(ctx, name, orders)
	return args.Error(0)
}

func orderIDs(orders []*order.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID().String())
	}
	return out
}

// withIDs matches a saved sequence by its order identifiers.
func withIDs(expected ...string) any {
	return mock.MatchedBy(func(orders []*order.Order) bool {
		got := orderIDs(orders)
		if len(got) != len(expected) {
			return false
		}
		for i := range got {
			if got[i] != expected[i] {
				return false
			}
		}
		return true
	})
}

func newID(t *testing.T, raw string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(raw)
	require.NoError(t, err)
	return id
}

func newItem(t *testing.T, name string, price, quantity int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(name, price, quantity)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, id, customer string, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.LineItem{newItem(t, "Tea", 30, 2)}
	}
	o, err := order.NewOrder(newID(t, id), customer, items)
	require.NoError(t, err)
	return o
}

func newPending(t *testing.T, orders ...*order.Order) *order.PendingList {
	t.Helper()
	list, dropped := order.NewPendingList(orders)
	require.Empty(t, dropped)
	return list
}
