// Package services contains stateless domain services for the inventory
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockery/services/inventory/domain/models"
)

// ComputeOrderTotal derives an order's total from all of its lines:
// sum of quantity * unit_price, rounded to 2 decimal places.
//
// This is a full re-derivation rather than an incremental adjustment so the
// total ends up correct even if it was inconsistent before the call.
func ComputeOrderTotal(lines []*models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	return total.Round(2)
}
