package repositories

import (
	"context"

	"github.com/ghuser/stockery/services/inventory/domain/models"
)

// ItemRepository is the persistence interface for stocked items.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context) ([]*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id int64) error

	// SetQuantity writes the item's stock level. Only called from inside the
	// order mutation transaction, after the sufficiency check has passed on
	// the same read.
	SetQuantity(ctx context.Context, id int64, quantity int) error
}
