package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName = errors.New("product name cannot be empty")
	ErrEmptySKU  = errors.New("product sku cannot be empty")
)

// Status is the catalog state of a product.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "DEACTIVE"
)

// Product is the narrow catalog view the inventory and billing core depends
// on. Catalog metadata (category, brand, unit, model) lives outside the core.
type Product struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// New creates an active catalog product.
func New(sku, name string, purchasePrice, sellingPrice decimal.Decimal) (*Product, error) {
	if sku == "" {
		return nil, ErrEmptySKU
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Product{
		ID:            uuid.New().String(),
		SKU:           sku,
		Name:          name,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		Status:        StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
