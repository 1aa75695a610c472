package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockery/services/inventory/domain/models"
)

// OrderRepository is the persistence interface for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id int64) error

	// SetTotalAmount writes the derived order total. Only called from inside
	// the order mutation transaction after full re-derivation from the lines.
	SetTotalAmount(ctx context.Context, id int64, total decimal.Decimal) error
}

// OrderItemRepository is the persistence interface for order lines.
type OrderItemRepository interface {
	Create(ctx context.Context, line *models.OrderItem) error

	// FindByOrderAndItem returns the line for the (orderID, itemID) pair, or
	// domain.ErrOrderItemNotFound when no such line exists.
	FindByOrderAndItem(ctx context.Context, orderID, itemID int64) (*models.OrderItem, error)

	// ListByOrder returns all lines of the given order.
	ListByOrder(ctx context.Context, orderID int64) ([]*models.OrderItem, error)

	// SetQuantity writes the accumulated quantity for an existing line.
	SetQuantity(ctx context.Context, id int64, quantity int) error
}
