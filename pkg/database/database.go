// Package database wraps a pgx connection pool and owns transaction
// boundaries. Multi-step business operations run through InSerializableTx so
// concurrent read-modify-write sequences serialize instead of interleaving.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghuser/stockery/pkg/logger"
)

// ErrSerializationFailure is returned by InSerializableTx when the database
// keeps aborting the transaction due to concurrent writers and all retries
// are exhausted. The whole operation is safe to retry.
var ErrSerializationFailure = errors.New("transaction serialization failure")

const (
	maxTxAttempts    = 3
	txRetryBaseDelay = 10 * time.Millisecond
)

// Querier is the subset of pgx operations repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repository code serves
// pooled reads and transaction-bound writes.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Database wraps a pgxpool.Pool configured with shopspring/decimal support
// for NUMERIC columns.
type Database struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

// NewPool connects to PostgreSQL and registers the decimal codec on every
// connection so NUMERIC columns scan into decimal.Decimal.
func NewPool(ctx context.Context, databaseURL string, log logger.Logger) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{pool: pool, log: log}, nil
}

// Pool exposes the underlying pool for read paths that do not need a
// transaction.
func (d *Database) Pool() *pgxpool.Pool {
	return d.pool
}

// Ping probes the database. Satisfies the health checker interface.
func (d *Database) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

// Close releases all pool connections.
func (d *Database) Close() {
	d.pool.Close()
}

// InTx runs fn inside a transaction with the given options, committing when
// fn returns nil and rolling back on every other exit path, panics included.
func (d *Database) InTx(ctx context.Context, opts pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := d.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// InSerializableTx runs fn inside a SERIALIZABLE transaction, retrying the
// whole function up to maxTxAttempts times when the database aborts it with a
// serialization failure (40001) or deadlock (40P01). fn must therefore be
// safe to re-run from scratch. Exhausting the retries returns
// ErrSerializationFailure wrapping the last database error.
func (d *Database) InSerializableTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.Serializable}
	return retrySerializable(ctx, d.log, func() error {
		return d.InTx(ctx, opts, fn)
	})
}

// retrySerializable runs the transaction attempt up to maxTxAttempts times,
// backing off exponentially between retryable aborts. Non-retryable errors
// and successes return immediately.
func retrySerializable(ctx context.Context, log logger.Logger, run func() error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = run()
		if err == nil || !retryableTxError(err) {
			return err
		}

		log.WarnContext(ctx, "serializable tx aborted, retrying",
			"attempt", attempt,
			"max_attempts", maxTxAttempts,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(txRetryBaseDelay << (attempt - 1)):
		}
	}
	return fmt.Errorf("%w: %w", ErrSerializationFailure, err)
}

// retryableTxError reports whether err is a transaction abort the caller
// should retry: SQLSTATE 40001 (serialization failure) or 40P01 (deadlock).
func retryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
