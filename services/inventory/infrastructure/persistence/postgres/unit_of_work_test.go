package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghuser/stockery/pkg/database"
	invdomain "github.com/ghuser/stockery/services/inventory/domain"
)

func TestMapTxError(t *testing.T) {
	t.Run("retry exhaustion becomes domain conflict", func(t *testing.T) {
		exhausted := fmt.Errorf("%w: commit tx: SQLSTATE 40001", database.ErrSerializationFailure)

		err := mapTxError(exhausted)
		if !errors.Is(err, invdomain.ErrTxConflict) {
			t.Fatalf("expected ErrTxConflict, got %v", err)
		}
		// The database-level cause stays reachable for logs.
		if !errors.Is(err, database.ErrSerializationFailure) {
			t.Errorf("expected ErrSerializationFailure in chain, got %v", err)
		}
	})

	t.Run("domain errors pass through untouched", func(t *testing.T) {
		err := mapTxError(invdomain.ErrOrderNotFound)
		if !errors.Is(err, invdomain.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		if errors.Is(err, invdomain.ErrTxConflict) {
			t.Error("non-conflict error must not become ErrTxConflict")
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if err := mapTxError(nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})
}
