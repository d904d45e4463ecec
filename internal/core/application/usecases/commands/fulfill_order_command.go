package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrFulfillOrderCommandIsNotConstructed = errors.New(
		"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
	)
	ErrPositionIsInvalid = errors.New("position must be greater than 0")
)

// FulfillOrderCommand selects a pending order by its 1-based position in the
// numbered list shown to the operator.
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	position int

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand validates that position is at least 1. The upper
// bound is checked against the pending list by the handler.
func NewFulfillOrderCommand(position int) (FulfillOrderCommand, error) {
	if position < 1 {
		return FulfillOrderCommand{}, ErrPositionIsInvalid
	}

	return FulfillOrderCommand{
		position: position,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// Position returns the selected 1-based position.
func (c FulfillOrderCommand) Position() int {
	return c.position
}
