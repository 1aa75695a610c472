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
	insertOrderSQL = `INSERT INTO orders (client_id, status, total_amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	getOrderSQL = `SELECT id, client_id, status, total_amount, created_at, updated_at
		FROM orders WHERE id = $1`

	listOrdersSQL = `SELECT id, client_id, status, total_amount, created_at, updated_at
		FROM orders ORDER BY id`

	updateOrderSQL = `UPDATE orders
		SET client_id = $2, status = $3, updated_at = now()
		WHERE id = $1`

	setOrderTotalSQL = `UPDATE orders SET total_amount = $2, updated_at = now() WHERE id = $1`

	deleteOrderSQL = `DELETE FROM orders WHERE id = $1`
)

var _ repositories.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implements repositories.OrderRepository backed by PostgreSQL.
type OrderRepository struct {
	q database.Querier
}

// NewOrderRepository returns an OrderRepository using the given querier.
func NewOrderRepository(q database.Querier) *OrderRepository {
	return &OrderRepository{q: q}
}

// Create persists a new order and fills in its generated ID and timestamps.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	err := r.q.QueryRow(ctx, insertOrderSQL,
		o.ClientID, o.Status, o.TotalAmount,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID returns an order by ID, or domain.ErrOrderNotFound.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	rows, err := r.q.Query(ctx, getOrderSQL, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}

	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

// List returns all orders ordered by ID.
func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	rows, err := r.q.Query(ctx, listOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return pgx.CollectRows(rows, scanOrder)
}

// Update persists client and status changes to an existing order. The total
// is deliberately not written here; it only moves through SetTotalAmount.
func (r *OrderRepository) Update(ctx context.Context, o *models.Order) error {
	tag, err := r.q.Exec(ctx, updateOrderSQL, o.ID, o.ClientID, o.Status)
	if err != nil {
		return fmt.Errorf("update order %d: %w", o.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrOrderNotFound
	}
	return nil
}

// SetTotalAmount writes the derived order total.
func (r *OrderRepository) SetTotalAmount(ctx context.Context, id int64, total decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, setOrderTotalSQL, id, total)
	if err != nil {
		return fmt.Errorf("set total of order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrOrderNotFound
	}
	return nil
}

// Delete removes an order by ID. Lines are removed by the FK cascade.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, deleteOrderSQL, id)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrOrderNotFound
	}
	return nil
}

func scanOrder(row pgx.CollectableRow) (*models.Order, error) {
	var (
		o     models.Order
		total decimal.Decimal
	)
	err := row.Scan(&o.ID, &o.ClientID, &o.Status, &total, &o.CreatedAt, &o.UpdatedAt)
	o.TotalAmount = total
	return &o, err
}
