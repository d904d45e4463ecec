package order

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// PendingList is the ordered collection of orders waiting to be fulfilled.
// It guarantees that no two orders share an identifier (case-insensitive).
// Positions are 1-based, matching the numbers shown to the operator.
type PendingList struct {
	orders []*Order
}

// NewPendingList builds the list from orders loaded at startup. When an
// identifier repeats, the first occurrence is kept and the later ones are
// returned as dropped.
func NewPendingList(orders []*Order) (*PendingList, []*Order) {
	list := &PendingList{orders: make([]*Order, 0, len(orders))}

	var dropped []*Order
	for _, o := range orders {
		if err := list.Add(o); err != nil {
			dropped = append(dropped, o)
		}
	}

	return list, dropped
}

// Len returns the number of pending orders.
func (l *PendingList) Len() int {
	return len(l.orders)
}

// IsEmpty reports whether nothing is pending.
func (l *PendingList) IsEmpty() bool {
	return len(l.orders) == 0
}

// Orders returns a copy of the pending orders in their current order.
func (l *PendingList) Orders() []*Order {
	orders := make([]*Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}

// Find returns the pending order with the given identifier, ignoring case.
func (l *PendingList) Find(id kernel.OrderID) (*Order, bool) {
	for _, o := range l.orders {
		if o.ID().IsEqual(id) {
			return o, true
		}
	}
	return nil, false
}

// Add appends an order. It returns errs.ObjectAlreadyExistsError if an order
// with the same identifier is already pending; the list is left unchanged.
func (l *PendingList) Add(o *Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if l.contains(o) {
		return errs.NewObjectAlreadyExistsError("order", o.ID().String())
	}

	l.orders = append(l.orders, o)
	return nil
}

// RemoveAt removes and returns the order at the 1-based position, keeping the
// relative order of the remaining orders.
func (l *PendingList) RemoveAt(position int) (*Order, error) {
	if err := checkPosition(position, len(l.orders)); err != nil {
		return nil, err
	}

	idx := position - 1
	removed := l.orders[idx]
	l.orders = append(l.orders[:idx], l.orders[idx+1:]...)
	return removed, nil
}

// InsertAt puts an order back at the 1-based position. Position Len()+1 appends.
func (l *PendingList) InsertAt(position int, o *Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := checkPosition(position, len(l.orders)+1); err != nil {
		return err
	}
	if l.contains(o) {
		return errs.NewObjectAlreadyExistsError("order", o.ID().String())
	}

	idx := position - 1
	l.orders = append(l.orders, nil)
	copy(l.orders[idx+1:], l.orders[idx:])
	l.orders[idx] = o
	return nil
}

func (l *PendingList) contains(o *Order) bool {
	for _, existing := range l.orders {
		if existing.IsEqual(o) {
			return true
		}
	}
	return false
}

func checkPosition(position, upper int) error {
	if position < 1 || position > upper {
		return errs.NewValueIsOutOfRangeError("position", position, 1, upper)
	}
	return nil
}
