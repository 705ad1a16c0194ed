package price

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductPrice is a price-group override for a product. When a bill carries a
// price group, item unit prices default to the group price instead of the
// product's selling price.
type ProductPrice struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	PriceGroupID string          `json:"price_group_id"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// New creates a price-group override.
func New(productID, priceGroupID string, p decimal.Decimal) *ProductPrice {
	now := time.Now()
	return &ProductPrice{
		ID:           uuid.New().String(),
		ProductID:    productID,
		PriceGroupID: priceGroupID,
		Price:        p,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
