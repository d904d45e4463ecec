package console

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/gommon/log"
)

// OrderEntry is the dialog that takes a new order.
//
// The dialog asks for the order id, the customer and then items until a blank
// item name is given after at least one accepted item. Price must be a
// non-negative integer and quantity a positive one; anything else is asked
// again.
type OrderEntry struct {
	prompt *Prompter
	lookup queries.GetPendingOrderQueryHandler
	add    commands.AddOrderCommandHandler
	logger *log.Logger
}

// NewOrderEntry wires the dialog to its handlers.
func NewOrderEntry(
	prompt *Prompter,
	lookup queries.GetPendingOrderQueryHandler,
	add commands.AddOrderCommandHandler,
	logger *log.Logger,
) *OrderEntry {
	return &OrderEntry{
		prompt: prompt,
		lookup: lookup,
		add:    add,
		logger: logger,
	}
}

// Run executes one dialog and returns the message for the operator.
// A rejected id is a message, not an error. Errors are ErrInputClosed or a
// failure to persist the order; in both cases the pending list is unchanged.
func (e *OrderEntry) Run(ctx context.Context) (string, error) {
	raw, err := e.prompt.Ask("Order ID")
	if err != nil {
		return "", err
	}

	id, err := kernel.NewOrderID(raw)
	if errors.Is(err, errs.ErrValueIsRequired) {
		return "order id is required", nil
	}
	if err != nil {
		return "", err
	}

	exists, err := e.exists(ctx, id)
	if err != nil {
		return "", err
	}
	if exists {
		return fmt.Sprintf("order %s already exists", id), nil
	}

	customer, err := e.prompt.Ask("Customer name")
	if err != nil {
		return "", err
	}

	items, err := e.items()
	if err != nil {
		return "", err
	}

	cmd, err := commands.NewAddOrderCommand(id, customer, items)
	if err != nil {
		return "", err
	}

	o, err := e.add.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return fmt.Sprintf("order %s already exists", id), nil
	}
	if err != nil {
		e.logger.Errorf("add order %s: %v", id, err)
		return "", err
	}

	e.logger.Infof("order %s added for %q, total %d", o.ID(), o.Customer(), o.Total())
	return fmt.Sprintf("order %s added", o.ID()), nil
}

func (e *OrderEntry) exists(ctx context.Context, id kernel.OrderID) (bool, error) {
	query, err := queries.NewGetPendingOrderQuery(id)
	if err != nil {
		return false, err
	}

	_, err = e.lookup.Handle(ctx, query)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (e *OrderEntry) items() ([]order.LineItem, error) {
	var items []order.LineItem

	for {
		name, err := e.prompt.Ask("Item name (blank to finish)")
		if err != nil {
			return nil, err
		}

		if name == "" {
			if len(items) > 0 {
				return items, nil
			}
			e.prompt.Say("at least one item is required")
			continue
		}

		price, err := e.prompt.AskInt("Price", func(n int) bool { return n >= 0 },
			"price must be a whole number of at least 0")
		if err != nil {
			return nil, err
		}

		item, err := e.item(name, price)
		if err != nil {
			return nil, err
		}

		if _, err = order.SumSubtotals(append(items, item)); errors.Is(err, order.ErrAmountTooLarge) {
			e.prompt.Say("order total is too large, %s was not added", item.Name())
			continue
		}
		items = append(items, item)
	}
}

// item asks for the quantity until price * quantity fits.
func (e *OrderEntry) item(name string, price int) (order.LineItem, error) {
	for {
		quantity, err := e.prompt.AskInt("Quantity", func(n int) bool { return n > 0 },
			"quantity must be a whole number greater than 0")
		if err != nil {
			return order.LineItem{}, err
		}

		item, err := order.NewLineItem(name, price, quantity)
		if errors.Is(err, order.ErrAmountTooLarge) {
			e.prompt.Say("subtotal is too large, enter a smaller quantity")
			continue
		}
		return item, err
	}
}
