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
	insertItemSQL = `INSERT INTO items (name, quantity, price, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	getItemSQL = `SELECT id, name, quantity, price, category_id, created_at, updated_at
		FROM items WHERE id = $1`

	listItemsSQL = `SELECT id, name, quantity, price, category_id, created_at, updated_at
		FROM items ORDER BY id`

	updateItemSQL = `UPDATE items
		SET name = $2, quantity = $3, price = $4, category_id = $5, updated_at = now()
		WHERE id = $1`

	setItemQuantitySQL = `UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`

	deleteItemSQL = `DELETE FROM items WHERE id = $1`
)

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// ItemRepository implements repositories.ItemRepository backed by PostgreSQL.
type ItemRepository struct {
	q database.Querier
}

// NewItemRepository returns an ItemRepository using the given querier.
func NewItemRepository(q database.Querier) *ItemRepository {
	return &ItemRepository{q: q}
}

// Create persists a new item and fills in its generated ID and timestamps.
func (r *ItemRepository) Create(ctx context.Context, i *models.Item) error {
	err := r.q.QueryRow(ctx, insertItemSQL,
		i.Name.String(), i.Quantity, i.Price, i.CategoryID,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID returns an item by ID, or domain.ErrItemNotFound.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	rows, err := r.q.Query(ctx, getItemSQL, id)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}

	i, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return i, nil
}

// List returns all items ordered by ID.
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.q.Query(ctx, listItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return pgx.CollectRows(rows, scanItem)
}

// Update persists changes to an existing item.
func (r *ItemRepository) Update(ctx context.Context, i *models.Item) error {
	tag, err := r.q.Exec(ctx, updateItemSQL,
		i.ID, i.Name.String(), i.Quantity, i.Price, i.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("update item %d: %w", i.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrItemNotFound
	}
	return nil
}

// SetQuantity writes the item's stock level.
func (r *ItemRepository) SetQuantity(ctx context.Context, id int64, quantity int) error {
	tag, err := r.q.Exec(ctx, setItemQuantitySQL, id, quantity)
	if err != nil {
		return fmt.Errorf("set quantity of item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrItemNotFound
	}
	return nil
}

// Delete removes an item by ID.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, deleteItemSQL, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrItemNotFound
	}
	return nil
}

func scanItem(row pgx.CollectableRow) (*models.Item, error) {
	var (
		i     models.Item
		name  string
		price decimal.Decimal
	)
	err := row.Scan(&i.ID, &name, &i.Quantity, &price, &i.CategoryID, &i.CreatedAt, &i.UpdatedAt)
	i.Name = models.Name(name)
	i.Price = price
	return &i, err
}
