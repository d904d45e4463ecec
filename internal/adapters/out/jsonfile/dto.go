// Package jsonfile stores sequences of orders as indented JSON arrays, one file
// per store name. The layout matches the files the restaurant staff already
// inspect by hand:
//
//	[
//	    {
//	        "order_id": "A1",
//	        "customer": "Alice",
//	        "items": [
//	            {
//	                "name": "Tea",
//	                "price": 30,
//	                "quantity": 2
//	            }
//	        ]
//	    }
//	]
package jsonfile

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderDTO is the persisted form of an order.
type OrderDTO struct {
	OrderID  string        `json:"order_id"`
	Customer string        `json:"customer"`
	Items    []LineItemDTO `json:"items"`
}

// LineItemDTO is the persisted form of a line item.
type LineItemDTO struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order to its persisted form. Items are never encoded as null.
func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dto := OrderDTO{
		OrderID:  o.ID().String(),
		Customer: o.Customer(),
		Items:    make([]LineItemDTO, 0, len(items)),
	}

	for _, item := range items {
		dto.Items = append(dto.Items, LineItemDTO{
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	return dto
}

// toDomain rebuilds an order through RestoreOrder so stored data obeys the same
// rules as entered data.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for i, raw := range dto.Items {
		item, itemErr := order.NewLineItem(raw.Name, raw.Price, raw.Quantity)
		if itemErr != nil {
			return nil, fmt.Errorf("order %s item %d: %w", id, i+1, itemErr)
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Customer, items)
}
