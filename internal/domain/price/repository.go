package price

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrPriceNotFound reports a missing price-group override.
var ErrPriceNotFound = errors.New("price not found for product and price group")

// Repository defines the price-group lookup operations the core consumes.
type Repository interface {
	// Upsert creates or replaces the override for (product, price group).
	Upsert(ctx context.Context, p *ProductPrice) error

	// GetPrice returns the override price for (product, price group), or
	// ErrPriceNotFound when no override exists.
	GetPrice(ctx context.Context, productID, priceGroupID string) (decimal.Decimal, error)
}
