package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ghuser/stockery/pkg/database"
	invdomain "github.com/ghuser/stockery/services/inventory/domain"
	"github.com/ghuser/stockery/services/inventory/domain/models"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
)

const (
	insertClientSQL = `INSERT INTO clients (name, address)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	getClientSQL = `SELECT id, name, address, created_at, updated_at
		FROM clients WHERE id = $1`

	listClientsSQL = `SELECT id, name, address, created_at, updated_at
		FROM clients ORDER BY id`

	updateClientSQL = `UPDATE clients
		SET name = $2, address = $3, updated_at = now()
		WHERE id = $1`

	deleteClientSQL = `DELETE FROM clients WHERE id = $1`
)

var _ repositories.ClientRepository = (*ClientRepository)(nil)

// ClientRepository implements repositories.ClientRepository backed by PostgreSQL.
type ClientRepository struct {
	q database.Querier
}

// NewClientRepository returns a ClientRepository using the given querier.
func NewClientRepository(q database.Querier) *ClientRepository {
	return &ClientRepository{q: q}
}

// Create persists a new client and fills in its generated ID and timestamps.
func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	err := r.q.QueryRow(ctx, insertClientSQL,
		c.Name.String(), c.Address,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID returns a client by ID, or domain.ErrClientNotFound.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	rows, err := r.q.Query(ctx, getClientSQL, id)
	if err != nil {
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}

	c, err := pgx.CollectExactlyOneRow(rows, scanClient)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invdomain.ErrClientNotFound
		}
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return c, nil
}

// List returns all clients ordered by ID.
func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.q.Query(ctx, listClientsSQL)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return pgx.CollectRows(rows, scanClient)
}

// Update persists changes to an existing client.
func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	tag, err := r.q.Exec(ctx, updateClientSQL, c.ID, c.Name.String(), c.Address)
	if err != nil {
		return fmt.Errorf("update client %d: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrClientNotFound
	}
	return nil
}

// Delete removes a client by ID.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, deleteClientSQL, id)
	if err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return invdomain.ErrClientNotFound
	}
	return nil
}

func scanClient(row pgx.CollectableRow) (*models.Client, error) {
	var (
		c    models.Client
		name string
	)
	err := row.Scan(&c.ID, &name, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	c.Name = models.Name(name)
	return &c, err
}
