package repositories

import "context"

// OrderStore bundles the repositories the order mutation workflow touches.
// All three views are bound to the same transaction when obtained through
// a UnitOfWork.
type OrderStore interface {
	Orders() OrderRepository
	Items() ItemRepository
	OrderItems() OrderItemRepository
}

// UnitOfWork runs fn inside a single serializable transaction. fn sees
// transaction-bound repositories through the OrderStore; returning an error
// rolls everything back, returning nil commits. The implementation retries
// fn in full when the database aborts the transaction due to a concurrent
// writer, so fn must be safe to re-run from scratch.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(store OrderStore) error) error
}
