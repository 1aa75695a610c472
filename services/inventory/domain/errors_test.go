package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrCategoryNotFound, "category not found"},
		{ErrItemNotFound, "item not found"},
		{ErrClientNotFound, "client not found"},
		{ErrOrderNotFound, "order not found"},
		{ErrOrderItemNotFound, "order item not found"},
		{ErrInvalidName, "invalid name"},
		{ErrInvalidQuantity, "quantity must be greater than 0"},
		{ErrOrderIDMismatch, "order ID mismatch between path and body"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("unexpected message: got %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get order: %w", ErrOrderNotFound)
	if !errors.Is(wrapped, ErrOrderNotFound) {
		t.Fatal("errors.Is must match wrapped ErrOrderNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidName, errors.New("too long"))
	if !errors.Is(wrapped2, ErrInvalidName) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidName")
	}
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := &InsufficientStockError{ItemID: 3, ItemName: "Widget", Requested: 5, Available: 2}
	want := "insufficient stock for item Widget: available 2, requested 5"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestInsufficientStockError_As(t *testing.T) {
	var target *InsufficientStockError
	err := fmt.Errorf("add item: %w", &InsufficientStockError{ItemID: 1, Requested: 2, Available: 0})
	if !errors.As(err, &target) {
		t.Fatal("errors.As must match wrapped InsufficientStockError")
	}
	if target.Requested != 2 || target.Available != 0 {
		t.Fatalf("unexpected detail: %+v", target)
	}
}

func TestBusinessError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := &BusinessError{Op: "add item to order", Cause: cause}

	if err.Error() != "add item to order failed" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is must reach the wrapped cause")
	}
}
