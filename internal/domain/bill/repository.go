package bill

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filter narrows and paginates bill listings.
type Filter struct {
	StoreID string
	Status  Status
	Keyword string
	Date    *time.Time
	Limit   int
	Offset  int
}

// Detail is the flattened bill projection consumed by invoice rendering and
// the bill query surface: the bill plus the names of its related records.
type Detail struct {
	Bill
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`
	StoreName       string `json:"store_name"`
	StoreAddress    string `json:"store_address,omitempty"`
	StorePhone      string `json:"store_phone,omitempty"`
	StaffName       string `json:"staff_name,omitempty"`
}

// Repository defines the persistence operations for bills.
//
// The four settlement operations are atomic: each runs as a single database
// transaction covering the bill rows, every per-item stock mutation with its
// ledger entry, and the customer due update. A failure on any item (for
// example insufficient stock) aborts the whole transaction, leaving no bill
// and no stock change behind.
type Repository interface {
	// CreateSettled persists a direct-sale bill: allocates the bill number,
	// inserts bill, items and taxes, applies one SALE movement per item and
	// updates the customer's due/purchase totals when a customer is set.
	CreateSettled(ctx context.Context, b *Bill) error

	// CreateHold persists a HOLD bill: same as CreateSettled but each
	// item's quantity is reserved instead of sold, and no customer totals
	// are touched until the hold is paid.
	CreateHold(ctx context.Context, b *Bill) error

	// SettleHold pays a HOLD bill: recomputes due and status from
	// paidAmount, releases each item's reservation, applies the SALE
	// movements and updates customer totals. Fails with ErrNotHold when the
	// bill is not in HOLD.
	SettleHold(ctx context.Context, billID string, paidAmount decimal.Decimal, method PaymentMethod) (*Bill, error)

	// CancelHold releases every item's reservation and hard-deletes the
	// bill; items and taxes go with it by cascade. Fails with ErrNotHold
	// when the bill is not in HOLD.
	CancelHold(ctx context.Context, billID string) error

	// FindByID returns the flattened projection of one bill, including its
	// items and taxes.
	FindByID(ctx context.Context, id string) (*Detail, error)

	// List returns bills matching the filter, newest first, along with the
	// total number of matching rows.
	List(ctx context.Context, filter Filter) ([]Detail, int, error)
}
