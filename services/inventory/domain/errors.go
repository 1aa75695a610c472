package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrClientNotFound indicates the requested client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderItemNotFound indicates the requested order line does not exist.
	ErrOrderItemNotFound = errors.New("order item not found")

	// ErrInvalidName indicates an entity name violates domain constraints.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidQuantity indicates a non-positive quantity was supplied.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")

	// ErrOrderIDMismatch indicates the order ID in the request path and body disagree.
	ErrOrderIDMismatch = errors.New("order ID mismatch between path and body")

	// ErrTxConflict indicates the transaction was aborted by a concurrent
	// writer and in-process retries were exhausted. Safe to retry the call.
	ErrTxConflict = errors.New("transaction conflict, retry the request")
)

// InsufficientStockError indicates an item does not have enough stock to cover
// the requested quantity. Carries both amounts so callers can act on it.
type InsufficientStockError struct {
	ItemID    int64
	ItemName  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: available %d, requested %d",
		e.ItemName, e.Available, e.Requested)
}

// BusinessError wraps an unexpected infrastructure failure that occurred inside
// a business operation. The cause is preserved for logging but callers only
// see the operation name.
type BusinessError struct {
	Op    string
	Cause error
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s failed", e.Op)
}

func (e *BusinessError) Unwrap() error {
	return e.Cause
}
