package bill

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyStoreID    = errors.New("store id cannot be empty")
	ErrEmptyStaffID    = errors.New("staff id cannot be empty")
	ErrNoItems         = errors.New("bill must have at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be greater than zero")
	ErrNotHold         = errors.New("only HOLD bills can be paid or cancelled")

	ErrNegativePaidAmount = errors.New("paid amount cannot be negative")
)

// Status is the lifecycle state of a bill.
type Status string

const (
	StatusPaid      Status = "PAID"
	StatusDue       Status = "DUE"
	StatusHold      Status = "HOLD"
	StatusCancelled Status = "CANCELLED"
)

// PaymentMethod is how a bill was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentUPI          PaymentMethod = "UPI"
	PaymentCard         PaymentMethod = "CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentOther        PaymentMethod = "OTHER"
)

// Bill is one sale or hold transaction. A HOLD bill holds its stock through
// reservations; paying or cancelling it is the only way out of HOLD. PAID and
// DUE bills are immutable.
type Bill struct {
	ID                string          `json:"id"`
	BillNumber        string          `json:"bill_number"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	DiscountPercent   decimal.Decimal `json:"discount_percent"`
	Total             decimal.Decimal `json:"total"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	DueAmount         decimal.Decimal `json:"due_amount"`
	PrevDuePaidAmount decimal.Decimal `json:"prev_due_paid_amount"`
	PreviousDue       decimal.Decimal `json:"previous_due"`
	TotalBillAmount   decimal.Decimal `json:"total_bill_amount"`
	Status            Status          `json:"status"`
	Note              string          `json:"note,omitempty"`
	PaymentMethod     PaymentMethod   `json:"payment_method,omitempty"`
	CustomerID        *string         `json:"customer_id,omitempty"`
	StoreID           string          `json:"store_id"`
	StaffID           string          `json:"staff_id"`
	PriceGroupID      *string         `json:"price_group_id,omitempty"`
	Items             []Item          `json:"items,omitempty"`
	Taxes             []Tax           `json:"taxes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Item is one bill line. Items are created with their bill and become
// immutable once the bill leaves HOLD; they are cascade-deleted with it.
type Item struct {
	ID        string          `json:"id"`
	BillID    string          `json:"bill_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`

	// ProductName is filled by query projections; it is not persisted on
	// the item row.
	ProductName string `json:"product_name,omitempty"`
}

// Tax is one tax line applied to a bill. Immutable, cascade-deleted with it.
type Tax struct {
	ID         string          `json:"id"`
	BillID     string          `json:"bill_id"`
	TaxRateID  *string         `json:"tax_rate_id,omitempty"`
	TaxName    string          `json:"tax_name"`
	TaxPercent decimal.Decimal `json:"tax_percent"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
}

// ComputeDue returns the unpaid portion of a bill, floored at zero:
// max(0, total - paidAmount - prevDuePaidAmount).
func ComputeDue(total, paidAmount, prevDuePaidAmount decimal.Decimal) decimal.Decimal {
	due := total.Sub(paidAmount).Sub(prevDuePaidAmount)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// StatusForDue derives a settled bill's status from its due amount: DUE when
// anything is still owed, PAID otherwise.
func StatusForDue(due decimal.Decimal) Status {
	if due.IsPositive() {
		return StatusDue
	}
	return StatusPaid
}

// NewItem builds a bill line, deriving subtotal and total from quantity and
// unit price.
func NewItem(productID string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return &Item{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
		Total:     subtotal,
	}, nil
}

// IsHold reports whether the bill is still holding stock via reservations.
func (b *Bill) IsHold() bool {
	return b.Status == StatusHold
}
