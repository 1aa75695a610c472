package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Item is a stocked catalog entry. Quantity is units on hand and must never
// go negative; Price is the current catalog price, snapshotted onto order
// lines at the moment they are created.
type Item struct {
	ID         int64
	Name       Name
	Quantity   int
	Price      decimal.Decimal
	CategoryID *int64 // nil for uncategorized items
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewItem constructs a valid Item or returns an error if stock or price
// constraints are violated.
func NewItem(name Name, quantity int, price decimal.Decimal, categoryID *int64) (*Item, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("item quantity must not be negative, got %d", quantity)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("item price must not be negative, got %s", price)
	}
	return &Item{
		Name:       name,
		Quantity:   quantity,
		Price:      price,
		CategoryID: categoryID,
	}, nil
}

// HasStock reports whether the item can cover the requested quantity.
func (i *Item) HasStock(requested int) bool {
	return i.Quantity >= requested
}
