package customer

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines the customer ledger operations the core consumes.
type Repository interface {
	// Create persists a new customer.
	Create(ctx context.Context, c *Customer) error

	// FindByID returns a customer by its ID.
	FindByID(ctx context.Context, id string) (*Customer, error)

	// UpdateDueAndPurchase applies RecordBill semantics: sets the due
	// balance to dueAmount and adds totalBillAmount to lifetime purchases.
	UpdateDueAndPurchase(ctx context.Context, customerID string, dueAmount, totalBillAmount decimal.Decimal) error

	// List returns a paginated customer listing with the total row count.
	List(ctx context.Context, limit, offset int) ([]Customer, int, error)
}
