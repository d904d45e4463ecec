// Package queries contains read operations over the pending orders.
// Queries return plain read models that the console renders; they never
// change state.
package queries

import "restaurant/internal/core/domain/model/order"

// LineItemView is one row of an order's item table.
type LineItemView struct {
	Name     string
	Price    int
	Quantity int
	Subtotal int
}

// OrderView is the read model of an order used by reports.
//
// Example:
//
//	view := queries.NewOrderView(o)
//	fmt.Printf("%s %s %d\n", view.ID, view.Customer, view.Total)
type OrderView struct {
	ID       string
	Customer string
	Items    []LineItemView
	Total    int
}

// NewOrderView copies an order into its read model.
func NewOrderView(o *order.Order) OrderView {
	items := o.Items()
	view := OrderView{
		ID:       o.ID().String(),
		Customer: o.Customer(),
		Items:    make([]LineItemView, 0, len(items)),
		Total:    o.Total(),
	}

	for _, item := range items {
		view.Items = append(view.Items, LineItemView{
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Subtotal: item.Subtotal(),
		})
	}

	return view
}
