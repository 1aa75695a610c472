package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ghuser/stockery/pkg/database"
	invdomain "github.com/ghuser/stockery/services/inventory/domain"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
)

var _ repositories.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork implements repositories.UnitOfWork on a SERIALIZABLE pgx
// transaction. Every repository handed to fn is bound to that transaction,
// so the order mutation's reads and writes serialize against concurrent
// calls touching the same rows instead of interleaving.
type UnitOfWork struct {
	db *database.Database
}

// NewUnitOfWork returns a UnitOfWork over the given database.
func NewUnitOfWork(db *database.Database) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do runs fn inside one serializable transaction, retrying on serialization
// aborts. When retries are exhausted the error is surfaced as
// domain.ErrTxConflict so the boundary can tell the caller to retry.
func (u *UnitOfWork) Do(ctx context.Context, fn func(store repositories.OrderStore) error) error {
	return mapTxError(u.db.InSerializableTx(ctx, func(tx pgx.Tx) error {
		return fn(&txStore{tx: tx})
	}))
}

// mapTxError translates retry exhaustion into the domain conflict sentinel so
// callers above the persistence layer never see pgx-level errors.
func mapTxError(err error) error {
	if errors.Is(err, database.ErrSerializationFailure) {
		return fmt.Errorf("%w: %w", invdomain.ErrTxConflict, err)
	}
	return err
}

// txStore binds all three repositories to a single transaction.
type txStore struct {
	tx pgx.Tx
}

func (s *txStore) Orders() repositories.OrderRepository {
	return NewOrderRepository(s.tx)
}

func (s *txStore) Items() repositories.ItemRepository {
	return NewItemRepository(s.tx)
}

func (s *txStore) OrderItems() repositories.OrderItemRepository {
	return NewOrderItemRepository(s.tx)
}
