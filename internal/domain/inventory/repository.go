package inventory

import (
	"context"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
	"github.com/shopspring/decimal"
)

// Filter narrows and paginates inventory listings.
type Filter struct {
	StoreID   string
	ProductID string
	Limit     int
	Offset    int
}

// MovementInput carries the optional audit metadata of a stock operation.
type MovementInput struct {
	Reference string
	Notes     string
	UserID    *string
}

// TransferResult reports both sides of a completed store-to-store transfer.
type TransferResult struct {
	ProductID        string `json:"product_id"`
	FromStoreID      string `json:"from_store_id"`
	ToStoreID        string `json:"to_store_id"`
	Quantity         int    `json:"quantity"`
	SourceStock      int    `json:"source_stock"`
	DestinationStock int    `json:"destination_stock"`
}

// Repository defines the persistence operations for inventory records.
//
// Every mutating operation executes as one database transaction that locks
// the affected record row(s), applies the transition through the Record
// methods and, for stock movements, appends the matching ledger entry before
// committing. Concurrent writers on the same (product, store) pair serialize
// on the row lock.
type Repository interface {
	// Create persists the first inventory record for a (product, store)
	// pair together with its initial PURCHASE ledger entry. It fails with
	// a duplicate conflict when a record for the pair already exists.
	Create(ctx context.Context, r *Record) error

	// FindByProductAndStore returns the record for the pair.
	FindByProductAndStore(ctx context.Context, productID, storeID string) (*Record, error)

	// ApplyMovement atomically applies one stock transition and appends its
	// ledger entry. ADJUSTMENT sets stock to qty absolutely; see
	// Record.Apply for the full contract.
	ApplyMovement(ctx context.Context, productID, storeID string, t movement.Type, qty int, in MovementInput) (*Record, error)

	// Reserve earmarks qty units against the pair's available stock.
	// Reservations produce no ledger entry.
	Reserve(ctx context.Context, productID, storeID string, qty int) (*Record, error)

	// Release returns qty reserved units to the available pool, clamped at
	// zero reserved.
	Release(ctx context.Context, productID, storeID string, qty int) (*Record, error)

	// Transfer moves qty units from one store's stock to another's in a
	// single transaction, lazily creating the destination record and
	// appending one TRANSFER ledger entry per side.
	Transfer(ctx context.Context, productID, fromStoreID, toStoreID string, qty int, in MovementInput) (*TransferResult, error)

	// CheckAvailability reports whether qty units are sellable right now.
	CheckAvailability(ctx context.Context, productID, storeID string, qty int) (bool, error)

	// List returns active records matching the filter, newest first, along
	// with the total number of matching rows.
	List(ctx context.Context, filter Filter) ([]Record, int, error)

	// ListByProduct returns a product's active records across all stores.
	ListByProduct(ctx context.Context, productID string) ([]Record, error)

	// ListLowStock returns active records whose stock is at or below their
	// minimum, optionally limited to one store.
	ListLowStock(ctx context.Context, storeID string) ([]Record, error)

	// UpdateCost updates the record's cost prices without touching stock.
	UpdateCost(ctx context.Context, productID, storeID string, costPrice, averageCostPrice decimal.Decimal) error

	// Deactivate soft-deletes the record. Records are never hard-deleted.
	Deactivate(ctx context.Context, productID, storeID string) error
}
