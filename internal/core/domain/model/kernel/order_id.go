package kernel

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrOrderIDIsNotConstructed is returned by Validate on a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errors.New("OrderID must be created via NewOrderID")

// OrderID identifies an order within a store. Identifiers are compared
// case-insensitively, so the constructor stores them trimmed and upper-cased.
//
// Example:
//
//	id, err := kernel.NewOrderID(" a1 ")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // "A1"
type OrderID struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderID normalizes raw and returns it as an OrderID.
// Returns errs.ValueIsRequiredError if raw is blank.
func NewOrderID(raw string) (OrderID, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}

	return OrderID{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the normalized identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual reports whether both identifiers name the same order, ignoring case.
func (id OrderID) IsEqual(other OrderID) bool {
	return strings.EqualFold(id.value, other.value)
}

// Validate returns ErrOrderIDIsNotConstructed for a zero-value OrderID.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}
