package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockery/pkg/database"
	invdomain "github.com/ghuser/stockery/services/inventory/domain"
	"github.com/ghuser/stockery/services/inventory/domain/models"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
)

const (
	insertOrderItemSQL = `INSERT INTO order_items (order_id, item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	findOrderItemSQL = `SELECT id, order_id, item_id, quantity, unit_price, created_at, updated_at
		FROM order_items WHERE order_id = $1 AND item_id = $2`

	listOrderItemsSQL = `SELECT id, order_id, item_id, quantity, unit_price, created_at, updated_at
		FROM order_items WHERE order_id = $1 ORDER BY id`

	setOrderItemQuantitySQL = `UPDATE order_items SET quantity = $2, updated_at = now() WHERE id = $1`
)

var _ repositories.OrderItemRepository = (*OrderItemRepository)(nil)

// OrderItemRepository implements repositories.OrderItemRepository backed by
// PostgreSQL. The UNIQUE (order_id, item_id) constraint on the table is the
// last line of defense for line uniqueness; the workflow upserts through
// FindByOrderAndItem before ever inserting.
type OrderItemRepository struct {
	q database.Querier
}

// NewOrderItemRepository returns an OrderItemRepository using the given querier.
func NewOrderItemRepository(q database.Querier) *OrderItemRepository {
	return &OrderItemRepository{q: q}
}

// Create persists a new order line and fills in its generated ID and timestamps.
func (r *OrderItemRepository) Create(ctx context.Context, oi *models.OrderItem) error {
	err := r.q.QueryRow(ctx, insertOrderItemSQL,
		oi.OrderID, oi.ItemID, oi.Quantity, oi.UnitPrice,
	).Scan(&oi.ID, &oi.CreatedAt, &oi.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// FindByOrderAndItem returns the line for the (orderID, itemID) pair, or
// domain.ErrOrderItemNotFound.
func (r *OrderItemRepository) FindByOrderAndItem(ctx context.Context, orderID, itemID int64) (*models.OrderItem, error) {
	rows, err := r.q.Query(ctx, findOrderItemSQL, orderID, itemID)
	if err != nil {
		return nil, fmt.Errorf("find order item (%d, %d): %w", orderID, itemID, err)
	}

	oi, err := pgx.CollectExactlyOneRow(rows, scanOrderItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invdomain.ErrOrderItemNotFound
		}
		return nil, fmt.Errorf("find order item (%d, %d): %w", orderID, itemID, err)
	}
	return oi, nil
}

// ListByOrder returns all lines of the given order.
func (r *OrderItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]*models.OrderItem, error) {
	rows, err := r.q.Query(ctx, listOrderItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("list items of order %d: %w", orderID, err)
	}
	return pgx.CollectRows(rows, scanOrderItem)
}

// SetQuantity writes the accumulated quantity for an existing line.
func (r *OrderItemRepository) SetQuantity(ctx context.Context, id int64, quantity int) error {
	tag, err := r.q.Exec(ctx, setOrderItemQuantitySQL, id, quantity)
	if err != nil {
		return fmt.Errorf("set quantity of order item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrOrderItemNotFound
	}
	return nil
}

func scanOrderItem(row pgx.CollectableRow) (*models.OrderItem, error) {
	var (
		oi    models.OrderItem
		price decimal.Decimal
	)
	err := row.Scan(&oi.ID, &oi.OrderID, &oi.ItemID, &oi.Quantity, &price, &oi.CreatedAt, &oi.UpdatedAt)
	oi.UnitPrice = price
	return &oi, err
}
