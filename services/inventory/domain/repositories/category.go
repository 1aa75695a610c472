package repositories

import (
	"context"

	"github.com/ghuser/stockery/services/inventory/domain/models"
)

// CategoryRepository is the persistence interface for the category tree.
// The domain layer owns this interface; infrastructure implements it.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)

	// ListChildren retrieves the direct children of the given parent.
	ListChildren(ctx context.Context, parentID int64) ([]*models.Category, error)

	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
}
