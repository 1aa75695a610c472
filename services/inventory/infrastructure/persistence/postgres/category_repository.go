// Package postgres implements the inventory domain repository interfaces
// against PostgreSQL. Repositories are bound to a database.Querier, so the
// same implementation serves pooled reads and transaction-scoped writes.
package postgres

import (
	"errors"
	"fmt"

	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ghuser/stockery/pkg/database"
	invdomain "github.com/ghuser/stockery/services/inventory/domain"
	"github.com/ghuser/stockery/services/inventory/domain/models"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
)

const (
	insertCategorySQL = `INSERT INTO categories (name, parent_id, level, path)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	getCategorySQL = `SELECT id, name, parent_id, level, path, created_at, updated_at
		FROM categories WHERE id = $1`

	listCategoriesSQL = `SELECT id, name, parent_id, level, path, created_at, updated_at
		FROM categories ORDER BY path, id`

	listCategoryChildrenSQL = `SELECT id, name, parent_id, level, path, created_at, updated_at
		FROM categories WHERE parent_id = $1 ORDER BY id`

	updateCategorySQL = `UPDATE categories
		SET name = $2, parent_id = $3, level = $4, path = $5, updated_at = now()
		WHERE id = $1`

	deleteCategorySQL = `DELETE FROM categories WHERE id = $1`
)

var _ repositories.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository implements repositories.CategoryRepository backed by PostgreSQL.
type CategoryRepository struct {
	q database.Querier
}

// NewCategoryRepository returns a CategoryRepository using the given querier.
func NewCategoryRepository(q database.Querier) *CategoryRepository {
	return &CategoryRepository{q: q}
}

// Create persists a new category and fills in its generated ID and timestamps.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	err := r.q.QueryRow(ctx, insertCategorySQL,
		c.Name.String(), c.ParentID, c.Level, c.Path,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID returns a category by ID, or domain.ErrCategoryNotFound.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	rows, err := r.q.Query(ctx, getCategorySQL, id)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}

	c, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invdomain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}

// List returns the full category tree ordered by materialized path.
func (r *CategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.q.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return pgx.CollectRows(rows, scanCategory)
}

// ListChildren returns the direct children of the given parent.
func (r *CategoryRepository) ListChildren(ctx context.Context, parentID int64) ([]*models.Category, error) {
	rows, err := r.q.Query(ctx, listCategoryChildrenSQL, parentID)
	if err != nil {
		return nil, fmt.Errorf("list children of category %d: %w", parentID, err)
	}
	return pgx.CollectRows(rows, scanCategory)
}

// Update persists changes to an existing category.
func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	tag, err := r.q.Exec(ctx, updateCategorySQL,
		c.ID, c.Name.String(), c.ParentID, c.Level, c.Path,
	)
	if err != nil {
		return fmt.Errorf("update category %d: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category by ID.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, deleteCategorySQL, id)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrCategoryNotFound
	}
	return nil
}

func scanCategory(row pgx.CollectableRow) (*models.Category, error) {
	var (
		c    models.Category
		name string
	)
	err := row.Scan(&c.ID, &name, &c.ParentID, &c.Level, &c.Path, &c.CreatedAt, &c.UpdatedAt)
	c.Name = models.Name(name)
	return &c, err
}
