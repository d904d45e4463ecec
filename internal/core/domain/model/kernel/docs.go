// Package kernel provides the shared value objects of the order manager.
//
// The package includes:
//   - OrderID: the customer-facing order identifier, normalized to upper case
//   - UUID: a random identifier used to tag a console session
//
// Both are immutable and reject their zero value through Validate.
package kernel
