// Package services provides domain services that coordinate more than one
// collection of orders.
//
// The package includes:
//   - OrderFulfiller: moves an order from the pending list to the fulfilled orders
package services
