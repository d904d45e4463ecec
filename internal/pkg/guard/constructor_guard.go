// Package guard lets value objects detect whether they were built by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when no
// specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in domain objects whose zero value is not usable.
// Only NewConstructorGuard produces a guard that passes Validate.
//
// Example usage:
//
//	var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")
//
//	type LineItem struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (li LineItem) Validate() error {
//	    return li.guard.Validate(ErrLineItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
