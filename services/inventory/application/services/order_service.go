package services

import (
	"context"
	"fmt"

	"github.com/ghuser/stockery/services/inventory/domain/models"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
)

// OrderWithItems is an order together with all of its lines, as returned by
// the order detail endpoint.
type OrderWithItems struct {
	Order *models.Order
	Items []*models.OrderItem
}

// OrderService orchestrates CRUD on orders. Adding items to an order is not
// done here — that is the OrderWorkflow, which owns a transaction across
// orders, items, and order lines.
type OrderService struct {
	orders repositories.OrderRepository
	lines  repositories.OrderItemRepository
}

// NewOrderService returns an OrderService wired with the given repositories.
func NewOrderService(orders repositories.OrderRepository, lines repositories.OrderItemRepository) *OrderService {
	return &OrderService{orders: orders, lines: lines}
}

// Create persists a new pending order for the given client.
func (s *OrderService) Create(ctx context.Context, clientID int64) (*models.Order, error) {
	order := models.NewOrder(clientID)
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return order, nil
}

// GetByID retrieves an order together with all of its lines.
func (s *OrderService) GetByID(ctx context.Context, id int64) (*OrderWithItems, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	lines, err := s.lines.ListByOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}

	return &OrderWithItems{Order: order, Items: lines}, nil
}

// List returns all orders.
func (s *OrderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Update sets an order's client and status. The total is derived state and
// never written through this path.
func (s *OrderService) Update(ctx context.Context, id, clientID int64, status string) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	order.ClientID = clientID
	order.Status = status
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

// Delete removes an order and, via the FK cascade, all of its lines.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
