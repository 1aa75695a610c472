package repositories

import (
	"context"

	"github.com/ghuser/stockery/services/inventory/domain/models"
)

// ClientRepository is the persistence interface for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id int64) error
}
