package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockery/pkg/logger"
	invdomain "github.com/ghuser/stockery/services/inventory/domain"
	domainevents "github.com/ghuser/stockery/services/inventory/domain/events"
	"github.com/ghuser/stockery/services/inventory/domain/models"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/stockery/services/inventory/domain/services"
)

// AddItemResult is returned after an item was successfully added to an order.
// OrderItemID identifies the line that was created or accumulated — exactly
// one line ever exists per (order, item) pair.
type AddItemResult struct {
	OrderItemID int64
	Message     string
}

// OrderWorkflow is the one multi-invariant business transaction in the
// system: adding an item to an order. A single call validates the order,
// the item, and its stock, then upserts the order line, decrements stock,
// and re-derives the order total — all inside one serializable transaction
// so concurrent calls on the same order or item serialize instead of
// overcommitting stock or losing increments.
type OrderWorkflow struct {
	uow repositories.UnitOfWork
	bus EventPublisher
	log logger.Logger
}

// NewOrderWorkflow returns an OrderWorkflow bound to the given unit of work.
func NewOrderWorkflow(uow repositories.UnitOfWork, bus EventPublisher, log logger.Logger) *OrderWorkflow {
	return &OrderWorkflow{uow: uow, bus: bus, log: log}
}

// AddItem adds quantity units of an item to an order.
//
// Validation short-circuits in order: order exists, item exists, stock
// covers the request. Then, within the same transaction:
//   - an existing (order, item) line accumulates the quantity in place,
//     otherwise a new line is created with the item's current price as its
//     permanent unit price snapshot;
//   - the item's stock is decremented by the requested quantity;
//   - the order total is recomputed in full from all of its lines.
//
// Domain failures (ErrOrderNotFound, ErrItemNotFound, InsufficientStockError,
// ErrTxConflict) propagate unwrapped for the boundary to map; any other
// failure is normalized into a BusinessError carrying the cause.
func (w *OrderWorkflow) AddItem(ctx context.Context, orderID, itemID int64, quantity int) (*AddItemResult, error) {
	if quantity <= 0 {
		return nil, invdomain.ErrInvalidQuantity
	}

	var (
		orderItemID int64
		total       decimal.Decimal
	)

	err := w.uow.Do(ctx, func(store repositories.OrderStore) error {
		order, err := store.Orders().GetByID(ctx, orderID)
		if err != nil {
			return err
		}

		item, err := store.Items().GetByID(ctx, itemID)
		if err != nil {
			return err
		}

		if !item.HasStock(quantity) {
			return &invdomain.InsufficientStockError{
				ItemID:    item.ID,
				ItemName:  item.Name.String(),
				Requested: quantity,
				Available: item.Quantity,
			}
		}

		line, err := store.OrderItems().FindByOrderAndItem(ctx, orderID, itemID)
		switch {
		case err == nil:
			// Accumulate on the existing line; no new identity.
			newQuantity := line.Quantity + quantity
			if err := store.OrderItems().SetQuantity(ctx, line.ID, newQuantity); err != nil {
				return err
			}
			orderItemID = line.ID
			w.log.InfoContext(ctx, "accumulated order line",
				"order_item_id", line.ID, "quantity", line.Quantity, "new_quantity", newQuantity)

		case errors.Is(err, invdomain.ErrOrderItemNotFound):
			// New line with the item's current price as the snapshot.
			line = models.NewOrderItem(orderID, itemID, quantity, item.Price)
			if err := store.OrderItems().Create(ctx, line); err != nil {
				return err
			}
			orderItemID = line.ID
			w.log.InfoContext(ctx, "created order line",
				"order_item_id", line.ID, "order_id", orderID, "unit_price", item.Price)

		default:
			return err
		}

		newStock := item.Quantity - quantity
		if err := store.Items().SetQuantity(ctx, itemID, newStock); err != nil {
			return err
		}

		// Full re-derivation across all lines, not an incremental patch, so
		// the total is correct even if it was inconsistent before this call.
		lines, err := store.OrderItems().ListByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		total = domainsvcs.ComputeOrderTotal(lines)

		return store.Orders().SetTotalAmount(ctx, order.ID, total)
	})
	if err != nil {
		return nil, w.classify(ctx, orderID, itemID, quantity, err)
	}

	w.publishItemAdded(ctx, orderID, itemID, orderItemID, quantity, total)

	return &AddItemResult{
		OrderItemID: orderItemID,
		Message:     "Item successfully added to order",
	}, nil
}

// classify logs the failure with enough context to diagnose without a repro
// and decides its shape: domain failures pass through unwrapped, everything
// else is normalized once here into a BusinessError.
func (w *OrderWorkflow) classify(ctx context.Context, orderID, itemID int64, quantity int, err error) error {
	var stockErr *invdomain.InsufficientStockError
	switch {
	case errors.Is(err, invdomain.ErrOrderNotFound):
		w.log.WarnContext(ctx, "order not found", "order_id", orderID)
		return err
	case errors.Is(err, invdomain.ErrItemNotFound):
		w.log.WarnContext(ctx, "item not found", "item_id", itemID)
		return err
	case errors.As(err, &stockErr):
		w.log.WarnContext(ctx, "insufficient stock",
			"item_id", stockErr.ItemID,
			"requested", stockErr.Requested,
			"available", stockErr.Available,
		)
		return err
	case errors.Is(err, invdomain.ErrTxConflict):
		w.log.WarnContext(ctx, "order mutation conflicted with concurrent writer",
			"order_id", orderID, "item_id", itemID, "error", err)
		return err
	default:
		w.log.ErrorContext(ctx, "add item to order failed",
			"order_id", orderID,
			"item_id", itemID,
			"quantity", quantity,
			"error", err,
		)
		return &invdomain.BusinessError{Op: "add item to order", Cause: err}
	}
}

// publishItemAdded emits the order.item_added event after the transaction
// committed. Best-effort: a publish failure is logged, never surfaced.
func (w *OrderWorkflow) publishItemAdded(ctx context.Context, orderID, itemID, orderItemID int64, quantity int, total decimal.Decimal) {
	if w.bus == nil {
		return
	}

	event := domainevents.OrderItemAddedEvent{
		EventID:     uuid.New(),
		Version:     1,
		OrderID:     orderID,
		ItemID:      itemID,
		OrderItemID: orderItemID,
		Quantity:    quantity,
		TotalAmount: total,
		OccurredAt:  time.Now().UTC(),
	}
	msg, err := eventMessage(event.EventID, event)
	if err != nil {
		w.log.ErrorContext(ctx, "marshal order.item_added event",
			"order_id", orderID, "error", fmt.Errorf("marshal: %w", err))
		return
	}
	if err := w.bus.Publish(ctx, domainevents.TopicOrderItemAdded, msg); err != nil {
		w.log.WarnContext(ctx, "publish order.item_added event",
			"order_id", orderID, "order_item_id", orderItemID, "error", err)
	}
}
