package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := NewItem("Widget", 10, decimal.RequireFromString("2.50"), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantity != 10 {
			t.Fatalf("expected quantity 10, got %d", item.Quantity)
		}
		if !item.Price.Equal(decimal.RequireFromString("2.50")) {
			t.Fatalf("unexpected price: %s", item.Price)
		}
	})

	t.Run("zero quantity is valid", func(t *testing.T) {
		if _, err := NewItem("Widget", 0, decimal.Zero, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative quantity returns error", func(t *testing.T) {
		if _, err := NewItem("Widget", -1, decimal.Zero, nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("negative price returns error", func(t *testing.T) {
		if _, err := NewItem("Widget", 1, decimal.RequireFromString("-0.01"), nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("category id is carried", func(t *testing.T) {
		catID := int64(7)
		item, err := NewItem("Widget", 1, decimal.Zero, &catID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CategoryID == nil || *item.CategoryID != 7 {
			t.Fatalf("expected category 7, got %v", item.CategoryID)
		}
	})
}

func TestItem_HasStock(t *testing.T) {
	item := &Item{Quantity: 5}

	tests := []struct {
		requested int
		want      bool
	}{
		{1, true},
		{5, true},
		{6, false},
		{0, true},
	}
	for _, tt := range tests {
		if got := item.HasStock(tt.requested); got != tt.want {
			t.Errorf("HasStock(%d) = %v, want %v", tt.requested, got, tt.want)
		}
	}
}
