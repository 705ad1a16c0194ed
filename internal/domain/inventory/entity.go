package inventory

import (
	"errors"
	"time"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID    = errors.New("product id cannot be empty")
	ErrEmptyStoreID      = errors.New("store id cannot be empty")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrInvalidMovement   = errors.New("invalid movement type")
	ErrInsufficientStock = errors.New("insufficient stock available")
	ErrInvariantBroken   = errors.New("inventory invariant broken")
)

// Record is the current stock state of one (product, store) pair. There is at
// most one record per pair; it is created on the first stock-in event and soft
// deactivated rather than deleted.
//
// At rest the record always satisfies:
//
//	0 <= ReservedStock <= Stock
//	AvailableStock == Stock - ReservedStock
type Record struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	StoreID          string          `json:"store_id"`
	Stock            int             `json:"stock"`
	ReservedStock    int             `json:"reserved_stock"`
	AvailableStock   int             `json:"available_stock"`
	MinStock         int             `json:"min_stock"`
	MaxStock         int             `json:"max_stock"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	AverageCostPrice decimal.Decimal `json:"average_cost_price"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// NewRecord creates the inventory record for a product's first stock-in at a
// store. The corresponding PURCHASE ledger entry (previous stock 0) is written
// by the repository in the same transaction.
func NewRecord(productID, storeID string, initialQty int, costPrice decimal.Decimal, minStock int) (*Record, error) {
	if productID == "" {
		return nil, ErrEmptyProductID
	}
	if storeID == "" {
		return nil, ErrEmptyStoreID
	}
	if initialQty < 0 {
		return nil, ErrNegativeQuantity
	}
	if minStock < 0 {
		minStock = 0
	}

	now := time.Now()
	return &Record{
		ID:               uuid.New().String(),
		ProductID:        productID,
		StoreID:          storeID,
		Stock:            initialQty,
		ReservedStock:    0,
		AvailableStock:   initialQty,
		MinStock:         minStock,
		CostPrice:        costPrice,
		AverageCostPrice: costPrice,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Apply executes one stock transition on the record and returns the stock
// value before the change. The caller persists the record and appends the
// matching ledger entry in the same transaction.
//
// PURCHASE and RETURN add qty to stock. SALE subtracts qty and fails with
// ErrInsufficientStock when the available (not on-hand) stock is smaller than
// qty, leaving the record untouched.
//
// ADJUSTMENT sets stock to qty ABSOLUTELY — it is an override, not a delta.
// A caller that wants a relative correction must read the current stock first
// and pass the target value.
func (r *Record) Apply(t movement.Type, qty int) (previous int, err error) {
	previous = r.Stock

	switch t {
	case movement.TypePurchase, movement.TypeReturn:
		if qty <= 0 {
			return previous, ErrInvalidQuantity
		}
		r.Stock += qty
	case movement.TypeSale:
		if qty <= 0 {
			return previous, ErrInvalidQuantity
		}
		if r.AvailableStock < qty {
			return previous, ErrInsufficientStock
		}
		r.Stock -= qty
	case movement.TypeAdjustment:
		if qty < 0 {
			return previous, ErrNegativeQuantity
		}
		// An adjustment below the reserved counter would drive available
		// stock negative and break the resting invariant.
		if qty < r.ReservedStock {
			return previous, ErrInsufficientStock
		}
		r.Stock = qty
	default:
		return previous, ErrInvalidMovement
	}

	r.AvailableStock = r.Stock - r.ReservedStock
	r.UpdatedAt = time.Now()
	return previous, nil
}

// ReserveStock earmarks qty units for a pending hold bill. Reserving splits
// existing stock between reserved and available; on-hand stock is unchanged
// and no ledger entry is produced.
func (r *Record) ReserveStock(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if r.AvailableStock < qty {
		return ErrInsufficientStock
	}

	r.ReservedStock += qty
	r.AvailableStock -= qty
	r.UpdatedAt = time.Now()
	return nil
}

// ReleaseStock returns qty reserved units to the available pool. Releasing
// more than is currently reserved clamps the counter at zero rather than
// failing, so a double cancel of the same hold stays harmless.
func (r *Record) ReleaseStock(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	r.ReservedStock -= qty
	if r.ReservedStock < 0 {
		r.ReservedStock = 0
	}
	r.AvailableStock = r.Stock - r.ReservedStock
	r.UpdatedAt = time.Now()
	return nil
}

// TransferStock moves qty units of on-hand stock from source to dest and
// returns each side's stock before the move for the ledger entries. The
// source must have qty units available; on any error both records are left
// untouched. Reservations stay where they are, so the combined on-hand stock
// of the two records is unchanged by the move.
func TransferStock(source, dest *Record, qty int) (sourcePrevious, destPrevious int, err error) {
	sourcePrevious = source.Stock
	destPrevious = dest.Stock

	if qty <= 0 {
		return sourcePrevious, destPrevious, ErrInvalidQuantity
	}
	if !source.HasAvailable(qty) {
		return sourcePrevious, destPrevious, ErrInsufficientStock
	}

	now := time.Now()
	source.Stock -= qty
	source.AvailableStock = source.Stock - source.ReservedStock
	source.UpdatedAt = now
	dest.Stock += qty
	dest.AvailableStock = dest.Stock - dest.ReservedStock
	dest.UpdatedAt = now
	return sourcePrevious, destPrevious, nil
}

// HasAvailable reports whether qty units are sellable right now.
func (r *Record) HasAvailable(qty int) bool {
	return r.AvailableStock >= qty
}

// IsLowStock reports whether the record is at or below its minimum stock.
func (r *Record) IsLowStock() bool {
	return r.Stock <= r.MinStock
}

// CheckInvariant verifies the record's resting-state invariant.
func (r *Record) CheckInvariant() error {
	if r.ReservedStock < 0 || r.ReservedStock > r.Stock {
		return ErrInvariantBroken
	}
	if r.AvailableStock != r.Stock-r.ReservedStock {
		return ErrInvariantBroken
	}
	return nil
}
