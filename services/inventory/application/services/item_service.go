package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockery/pkg/logger"
	domainevents "github.com/ghuser/stockery/services/inventory/domain/events"
	"github.com/ghuser/stockery/services/inventory/domain/models"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
)

// EventPublisher publishes domain events to the durable event bus.
// *events.EventBus satisfies it; tests substitute a fake.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// ItemService orchestrates CRUD on stocked catalog items. Stock mutations
// driven by order placement do NOT go through this service; they belong to
// the OrderWorkflow and its transaction.
type ItemService struct {
	repo repositories.ItemRepository
	bus  EventPublisher
	log  logger.Logger
}

// NewItemService returns an ItemService wired with the given repository and bus.
func NewItemService(repo repositories.ItemRepository, bus EventPublisher, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, bus: bus, log: log}
}

// Create validates and persists an item, then publishes ItemCreatedEvent.
// Publication is best-effort after the insert commits; a publish failure is
// logged, never surfaced.
func (s *ItemService) Create(ctx context.Context, name string, quantity int, price decimal.Decimal, categoryID *int64) (*models.Item, error) {
	itemName, err := newValidName(name)
	if err != nil {
		return nil, err
	}

	item, err := models.NewItem(itemName, quantity, price, categoryID)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	s.publishCreated(ctx, item)
	return item, nil
}

// GetByID retrieves an item.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List returns all items.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update persists name, stock, price, and category changes to an item.
func (s *ItemService) Update(ctx context.Context, id int64, name string, quantity int, price decimal.Decimal, categoryID *int64) (*models.Item, error) {
	itemName, err := newValidName(name)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	updated, err := models.NewItem(itemName, quantity, price, categoryID)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	updated.ID = item.ID
	updated.CreatedAt = item.CreatedAt

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return updated, nil
}

// Delete removes an item by ID.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (s *ItemService) publishCreated(ctx context.Context, item *models.Item) {
	if s.bus == nil {
		return
	}

	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Quantity:   item.Quantity,
		Price:      item.Price,
		OccurredAt: time.Now().UTC(),
	}
	msg, err := eventMessage(event.EventID, event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal item.created event", "item_id", item.ID, "error", err)
		return
	}
	if err := s.bus.Publish(ctx, domainevents.TopicItemCreated, msg); err != nil {
		s.log.WarnContext(ctx, "publish item.created event", "item_id", item.ID, "error", err)
	}
}

// eventMessage wraps a domain event in a watermill message with the standard
// deduplication metadata.
func eventMessage(eventID uuid.UUID, event any) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	return msg, nil
}
