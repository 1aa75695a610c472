package services

import (
	"context"
	"fmt"

	"github.com/ghuser/stockery/services/inventory/domain/models"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
)

// ClientService orchestrates CRUD on clients.
type ClientService struct {
	repo repositories.ClientRepository
}

// NewClientService returns a ClientService wired with the given repository.
func NewClientService(repo repositories.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

// Create validates and persists a client.
func (s *ClientService) Create(ctx context.Context, name, address string) (*models.Client, error) {
	clientName, err := newValidName(name)
	if err != nil {
		return nil, err
	}

	client := models.NewClient(clientName, address)
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}
	return client, nil
}

// GetByID retrieves a client.
func (s *ClientService) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return client, nil
}

// List returns all clients.
func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// Update persists name and address changes to a client.
func (s *ClientService) Update(ctx context.Context, id int64, name, address string) (*models.Client, error) {
	clientName, err := newValidName(name)
	if err != nil {
		return nil, err
	}

	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	client.Name = clientName
	client.Address = address
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return client, nil
}

// Delete removes a client by ID.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
