// Package commands contains the operations that change the pending and
// fulfilled orders. Every command follows the same pattern: validation,
// in-memory mutation, persistence, and rollback of the in-memory change when
// persistence fails.
package commands

// StoreNames tells the handlers which named stores hold the pending and the
// fulfilled orders.
type StoreNames struct {
	Pending   string
	Fulfilled string
}
