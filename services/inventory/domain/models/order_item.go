package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order: a single (order, item) pairing with a
// positive quantity and a unit price snapshotted from the item at creation
// time. Later catalog price changes never touch UnitPrice. At most one line
// exists per (OrderID, ItemID) pair; repeated additions accumulate quantity
// on the existing line.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrderItem constructs a line for the given order and item, capturing
// unitPrice as the permanent price snapshot.
func NewOrderItem(orderID, itemID int64, quantity int, unitPrice decimal.Decimal) *OrderItem {
	return &OrderItem{
		OrderID:   orderID,
		ItemID:    itemID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
}

// LineTotal returns quantity * unit price for this line.
func (oi *OrderItem) LineTotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
