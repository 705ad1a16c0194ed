package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies a notification.
type Type string

const (
	TypeLowStock   Type = "LOW_STOCK"
	TypeOutOfStock Type = "OUT_OF_STOCK"
	TypeSystem     Type = "SYSTEM"
)

// Notification is an advisory message for back-office operators. Low-stock
// notifications are produced by the periodic inventory scan; they never
// influence stock quantities.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	Type      Type      `json:"type"`
	StoreID   string    `json:"store_id,omitempty"`
	ProductID string    `json:"product_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates an unread notification.
func New(title, desc string, t Type, storeID, productID string) *Notification {
	return &Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Desc:      desc,
		Type:      t,
		StoreID:   storeID,
		ProductID: productID,
		Read:      false,
		CreatedAt: time.Now(),
	}
}
