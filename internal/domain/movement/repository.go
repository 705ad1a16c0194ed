package movement

import (
	"context"
)

// Filter narrows and paginates ledger queries.
type Filter struct {
	ProductID string
	StoreID   string
	Limit     int
	Offset    int
}

// Repository defines the persistence operations for the stock ledger.
// The ledger is append-only: there is deliberately no update or delete.
type Repository interface {
	// Create appends a single ledger entry.
	Create(ctx context.Context, m *Movement) error

	// List returns ledger entries matching the filter, newest first, along
	// with the total number of matching rows.
	List(ctx context.Context, filter Filter) ([]Movement, int, error)
}
