package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewOrderItem(t *testing.T) {
	price := decimal.RequireFromString("2.50")
	li := NewOrderItem(500, 100, 3, price)

	if li.OrderID != 500 || li.ItemID != 100 {
		t.Fatalf("unexpected identity: order %d item %d", li.OrderID, li.ItemID)
	}
	if li.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", li.Quantity)
	}
	if !li.UnitPrice.Equal(price) {
		t.Fatalf("expected unit price %s, got %s", price, li.UnitPrice)
	}
}

func TestOrderItem_LineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice string
		want      string
	}{
		{"simple", 3, "2.50", "7.50"},
		{"single unit", 1, "9.99", "9.99"},
		{"sub-cent precision preserved", 3, "0.333", "0.999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			li := NewOrderItem(1, 1, tt.quantity, decimal.RequireFromString(tt.unitPrice))
			want := decimal.RequireFromString(tt.want)
			if got := li.LineTotal(); !got.Equal(want) {
				t.Fatalf("LineTotal() = %s, want %s", got, want)
			}
		})
	}
}

func TestNewOrder(t *testing.T) {
	o := NewOrder(42)

	if o.ClientID != 42 {
		t.Fatalf("expected client 42, got %d", o.ClientID)
	}
	if o.Status != StatusPending {
		t.Fatalf("expected status %q, got %q", StatusPending, o.Status)
	}
	if !o.TotalAmount.IsZero() {
		t.Fatalf("expected zero total, got %s", o.TotalAmount)
	}
}
