package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrAddOrderCommandIsNotConstructed = errors.New(
	"AddOrderCommand must be created via NewAddOrderCommand constructor",
)

// AddOrderCommand represents a new order taken at the counter.
//
// Example:
//
//	id, _ := kernel.NewOrderID("a1")
//	tea, _ := order.NewLineItem("Tea", 30, 2)
//	cmd, err := NewAddOrderCommand(id, "Alice", []order.LineItem{tea})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewAddOrderCommandHandler(store, pending, names)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add order: %w", err)
//	}
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	customer string
	items    []order.LineItem

	guard guard.ConstructorGuard
}

// NewAddOrderCommand validates that the id is constructed and that at least
// one valid item is present. The customer is free text.
func NewAddOrderCommand(orderID kernel.OrderID, customer string, items []order.LineItem) (AddOrderCommand, error) {
	cmd := AddOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return AddOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

// OrderID returns the normalized identifier of the new order.
func (c AddOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Customer returns the customer name.
func (c AddOrderCommand) Customer() string {
	return c.customer
}

// Items returns a copy of the line items in entry order.
func (c AddOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *AddOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return order.ErrOrderHasNoItems
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	c.items = make([]order.LineItem, len(items))
	copy(c.items, items)
	return nil
}
