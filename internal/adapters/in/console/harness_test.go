package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"restaurant/internal/adapters/in/console"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"
)

const (
	pendingStore   = "orders.json"
	fulfilledStore = "output_orders.json"
)

var errDiskFull = errors.New("disk full")

// memStore keeps named stores in memory and records every call.
type memStore struct {
	files  map[string][]*order.Order
	failOn string
	loads  []string
	saves  []string
}

func newMemStore() *memStore {
	return &memStore{files: map[string][]*order.Order{}}
}

func (s *memStore) Load(_ context.Context, name string) []*order.Order {
	s.loads = append(s.loads, name)
	return append([]*order.Order{}, s.files[name]...)
}

func (s *memStore) Save(_ context.Context, name string, orders []*order.Order) error {
	s.saves = append(s.saves, name)
	if name == s.failOn {
		return errDiskFull
	}
	s.files[name] = append([]*order.Order{}, orders...)
	return nil
}

type harness struct {
	store       *memStore
	pending     *order.PendingList
	out         *bytes.Buffer
	logs        *bytes.Buffer
	prompt      *console.Prompter
	entry       *console.OrderEntry
	fulfillment *console.Fulfillment
	menu        *console.Menu
}

func newHarness(t *testing.T, input string, orders ...*order.Order) *harness {
	t.Helper()

	pending, dropped := order.NewPendingList(orders)
	require.Empty(t, dropped)

	h := &harness{
		store:   newMemStore(),
		pending: pending,
		out:     new(bytes.Buffer),
		logs:    new(bytes.Buffer),
	}

	logger := log.New("test")
	logger.SetOutput(h.logs)
	logger.SetLevel(log.DEBUG)

	names := commands.StoreNames{Pending: pendingStore, Fulfilled: fulfilledStore}
	list := queries.NewGetPendingOrdersQueryHandler(pending)

	h.prompt = console.NewPrompter(strings.NewReader(input), h.out)
	h.entry = console.NewOrderEntry(
		h.prompt,
		queries.NewGetPendingOrderQueryHandler(pending),
		commands.NewAddOrderCommandHandler(h.store, pending, names),
		logger,
	)
	h.fulfillment = console.NewFulfillment(
		h.prompt,
		list,
		commands.NewFulfillOrderCommandHandler(h.store, pending, names),
		logger,
	)
	h.menu = console.NewMenu(h.prompt, h.entry, h.fulfillment, list, console.NewReport(h.out), logger)

	return h
}

func (h *harness) pendingIDs() []string {
	return idsOf(h.pending.Orders())
}

func idsOf(orders []*order.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID().String())
	}
	return ids
}

func newOrder(t *testing.T, id, customer string, items ...order.LineItem) *order.Order {
	t.Helper()
	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	if len(items) == 0 {
		items = []order.LineItem{newItem(t, "Tea", 30, 2)}
	}
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
