package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending is the initial status for new orders. Status is otherwise
// free-form and set by callers through the order CRUD surface.
const StatusPending = "pending"

// Order is a client's order. TotalAmount is derived state: it always equals
// the sum of quantity * unit_price over the order's lines and is recomputed
// in full after every successful line mutation.
type Order struct {
	ID          int64
	ClientID    int64
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrder constructs a pending Order for the given client with a zero total.
func NewOrder(clientID int64) *Order {
	return &Order{
		ClientID:    clientID,
		Status:      StatusPending,
		TotalAmount: decimal.Zero,
	}
}
