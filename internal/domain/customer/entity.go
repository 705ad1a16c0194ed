package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrEmptyName = errors.New("customer name cannot be empty")

// Customer is the billing view of a customer: identity plus the running due
// and lifetime-purchase totals the settlement engine maintains.
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	TotalDue       decimal.Decimal `json:"total_due"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// New creates a customer with zeroed totals.
func New(name, phone, address string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Customer{
		ID:             uuid.New().String(),
		Name:           name,
		Phone:          phone,
		Address:        address,
		TotalDue:       decimal.Zero,
		TotalPurchases: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// RecordBill updates the customer's totals after a settled bill: the due
// balance is set to the bill's due amount and the bill's total is added to
// lifetime purchases.
func (c *Customer) RecordBill(dueAmount, totalBillAmount decimal.Decimal) {
	c.TotalDue = dueAmount
	c.TotalPurchases = c.TotalPurchases.Add(totalBillAmount)
	c.UpdatedAt = time.Now()
}
