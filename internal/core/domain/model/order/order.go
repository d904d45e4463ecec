package order

import (
	"errors"
	"fmt"
	"math"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned by NewOrder when no line item was supplied.
	ErrOrderHasNoItems = errs.NewValueIsRequiredErrorWithCause(
		"items",
		errors.New("at least one line item is required"),
	)
)

// Order is a customer's submitted set of line items under one identifier.
//
// Order follows these invariants:
//   - Must have a valid identifier
//   - Every line item is valid
//   - Items keep the order in which they were entered
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the normalized, case-insensitive order identifier
	id kernel.OrderID

	// customer is free text entered at the counter
	customer string

	// items are the ordered line items of the order
	items []LineItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order entered at the counter. At least one line item is
// required; the items slice is copied.
//
// Example:
//
//	id, _ := kernel.NewOrderID("a1")
//	tea, _ := order.NewLineItem("Tea", 30, 2)
//	o, err := order.NewOrder(id, "Alice", []order.LineItem{tea})
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.Total()) // 60
func NewOrder(id kernel.OrderID, customer string, items []LineItem) (*Order, error) {
	var itemsErr error
	if len(items) == 0 {
		itemsErr = ErrOrderHasNoItems
	}

	o, err := RestoreOrder(id, customer, items)
	if err = errors.Join(err, itemsErr); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read back from a store. Unlike NewOrder, an
// order without items is accepted.
func RestoreOrder(id kernel.OrderID, customer string, items []LineItem) (*Order, error) {
	o := &Order{
		customer:      customer,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the customer name.
func (o *Order) Customer() string {
	return o.customer
}

// Items returns a copy of the line items in entry order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the sum of the line item subtotals; 0 for an order without items.
// Constructors reject items whose sum would not fit in an int.
func (o *Order) Total() int {
	total := 0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// SumSubtotals adds up the item subtotals. It returns an errs.ValueIsOutOfRangeError
// caused by ErrAmountTooLarge when the sum does not fit in an int.
func SumSubtotals(items []LineItem) (int, error) {
	total := 0
	for i, item := range items {
		subtotal := item.Subtotal()
		if subtotal > math.MaxInt-total {
			return 0, errs.NewValueIsOutOfRangeErrorWithCause(
				fmt.Sprintf("item %d subtotal", i+1), subtotal, 0, math.MaxInt-total, ErrAmountTooLarge,
			)
		}
		total += subtotal
	}
	return total, nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	if _, err := SumSubtotals(items); err != nil {
		return err
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
