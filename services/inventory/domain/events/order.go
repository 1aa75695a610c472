package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Watermill topics published by the inventory context.
const (
	// TopicOrderItemAdded is published when an item is added to an order.
	TopicOrderItemAdded = "order.item_added"

	// TopicItemCreated is published when a new item enters the catalog.
	TopicItemCreated = "item.created"
)

// OrderItemAddedEvent is published after the transaction that mutated the
// order has committed, so consumers never observe an event without its data
// change. Consumers subscribe via EventBus.Subscribe(ctx, events.TopicOrderItemAdded).
type OrderItemAddedEvent struct {
	EventID     uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int             `json:"version"`  // Schema version; increment on breaking changes
	OrderID     int64           `json:"order_id"`
	ItemID      int64           `json:"item_id"`
	OrderItemID int64           `json:"order_item_id"`
	Quantity    int             `json:"quantity"`     // Quantity added by this call, not the accumulated line quantity
	TotalAmount decimal.Decimal `json:"total_amount"` // Order total after re-derivation
	OccurredAt  time.Time       `json:"occurred_at"`
}

// ItemCreatedEvent is published after a new Item is persisted.
type ItemCreatedEvent struct {
	EventID    uuid.UUID       `json:"event_id"`
	Version    int             `json:"version"`
	ItemID     int64           `json:"item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	OccurredAt time.Time       `json:"occurred_at"`
}
