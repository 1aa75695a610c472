package services

import (
	"github.com/ghuser/stockery/pkg/app"
	"github.com/ghuser/stockery/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Category      *CategoryService
	Item          *ItemService
	Client        *ClientService
	Order         *OrderService
	OrderWorkflow *OrderWorkflow
}

// New wires all inventory application services with infrastructure from the
// Application container. Plain CRUD repositories run on the pool; the order
// mutation workflow gets its own unit of work so it owns the transaction
// boundary.
func New(a *app.Application) *Services {
	pool := a.Db.Pool()
	categories := postgres.NewCategoryRepository(pool)
	items := postgres.NewItemRepository(pool)
	clients := postgres.NewClientRepository(pool)
	orders := postgres.NewOrderRepository(pool)
	orderItems := postgres.NewOrderItemRepository(pool)
	uow := postgres.NewUnitOfWork(a.Db)

	return &Services{
		Category:      NewCategoryService(categories),
		Item:          NewItemService(items, a.EventBus, a.Logger),
		Client:        NewClientService(clients),
		Order:         NewOrderService(orders, orderItems),
		OrderWorkflow: NewOrderWorkflow(uow, a.EventBus, a.Logger),
	}
}
