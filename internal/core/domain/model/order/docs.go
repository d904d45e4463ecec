// Package order provides the Order aggregate and the pending collection of the
// order manager.
//
// The package includes:
//   - LineItem: a product entry with unit price and quantity
//   - Order: the aggregate root holding an identifier, a customer and its line items
//   - PendingList: the ordered set of orders awaiting fulfillment
//
// Key business rules:
//   - Line item prices are non-negative and quantities positive
//   - A newly entered order carries at least one line item
//   - Order totals are the sum of price times quantity over all items
//   - Order identifiers are unique within the pending list, ignoring case
package order
