package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned by Validate on a zero-value LineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrAmountTooLarge is the cause of out-of-range errors for subtotals and
	// totals that do not fit in an int.
	ErrAmountTooLarge = errors.New("amount exceeds the largest supported value")
)

// LineItem is one product entry within an order. It is a value object: once
// built it never changes.
//
// Example:
//
//	tea, err := order.NewLineItem("Tea", 30, 2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tea.Subtotal()) // 60
type LineItem struct {
	name     string
	price    int
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem validates and builds a line item.
// The name must not be blank, price must be >= 0 and quantity > 0, and
// price * quantity must fit in an int. All violations are reported together.
func NewLineItem(name string, price, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate returns ErrLineItemIsNotConstructed for a zero-value LineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// Name returns the product name.
func (li LineItem) Name() string {
	return li.name
}

// Price returns the unit price.
func (li LineItem) Price() int {
	return li.price
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns price multiplied by quantity.
func (li LineItem) Subtotal() int {
	return li.price * li.quantity
}

func (li *LineItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	li.price = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if li.price > 0 && quantity > math.MaxInt/li.price {
		return errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, 1, math.MaxInt/li.price, ErrAmountTooLarge)
	}
	li.quantity = quantity
	return nil
}
