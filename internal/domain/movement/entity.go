package movement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductID = errors.New("product id cannot be empty")
	ErrEmptyStoreID   = errors.New("store id cannot be empty")
	ErrInvalidType    = errors.New("invalid movement type")
)

// Type identifies the kind of stock change a movement records.
type Type string

const (
	TypePurchase   Type = "PURCHASE"
	TypeSale       Type = "SALE"
	TypeAdjustment Type = "ADJUSTMENT"
	TypeTransfer   Type = "TRANSFER"
	TypeReturn     Type = "RETURN"
)

// Valid reports whether t is one of the known movement types.
func (t Type) Valid() bool {
	switch t {
	case TypePurchase, TypeSale, TypeAdjustment, TypeTransfer, TypeReturn:
		return true
	}
	return false
}

// Movement is one immutable quantity-change fact for a (product, store) pair.
// Rows are only ever appended; there is no update or delete anywhere in the
// system. Quantity is signed: transfers record a negative quantity on the
// outgoing side and a positive one on the incoming side.
type Movement struct {
	ID            string    `json:"id"`
	Type          Type      `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Reference     string    `json:"reference,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	ProductID     string    `json:"product_id"`
	StoreID       string    `json:"store_id"`
	UserID        *string   `json:"user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// New creates a ledger entry for a stock change that already happened.
func New(productID, storeID string, t Type, quantity, previousStock, newStock int, reference, notes string, userID *string) (*Movement, error) {
	if productID == "" {
		return nil, ErrEmptyProductID
	}
	if storeID == "" {
		return nil, ErrEmptyStoreID
	}
	if !t.Valid() {
		return nil, ErrInvalidType
	}

	return &Movement{
		ID:            uuid.New().String(),
		Type:          t,
		Quantity:      quantity,
		PreviousStock: previousStock,
		NewStock:      newStock,
		Reference:     reference,
		Notes:         notes,
		ProductID:     productID,
		StoreID:       storeID,
		UserID:        userID,
		CreatedAt:     time.Now(),
	}, nil
}

// Replay applies a ledger slice, oldest first, onto a starting stock value and
// returns the resulting stock. For a complete ledger of a (product, store)
// pair the result must equal the inventory record's current stock.
//
// PURCHASE and RETURN add their quantity, SALE subtracts it, TRANSFER adds its
// signed quantity and ADJUSTMENT overrides the running stock with NewStock.
func Replay(initial int, movements []Movement) int {
	stock := initial
	for _, m := range movements {
		switch m.Type {
		case TypePurchase, TypeReturn:
			stock += m.Quantity
		case TypeSale:
			stock -= m.Quantity
		case TypeTransfer:
			stock += m.Quantity
		case TypeAdjustment:
			stock = m.NewStock
		}
	}
	return stock
}

// VerifyChain checks that a ledger slice, oldest first, forms an unbroken
// previous/new stock chain starting at initial. It returns the index of the
// first inconsistent row, or -1 when the chain is intact.
func VerifyChain(initial int, movements []Movement) int {
	stock := initial
	for i, m := range movements {
		if m.PreviousStock != stock {
			return i
		}
		stock = m.NewStock
	}
	return -1
}
