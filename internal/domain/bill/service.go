package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/customer"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/price"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/product"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/staff"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemInput is one requested bill line. A zero unit price asks the engine to
// resolve the price itself: the bill's price group first, then the product's
// selling price.
type ItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// TaxInput is one requested tax line.
type TaxInput struct {
	TaxRateID  *string
	TaxName    string
	TaxPercent decimal.Decimal
	TaxAmount  decimal.Decimal
}

// CreateInput carries the checkout amounts computed by the sale panel.
type CreateInput struct {
	Subtotal          decimal.Decimal
	TaxAmount         decimal.Decimal
	DiscountAmount    decimal.Decimal
	DiscountPercent   decimal.Decimal
	Total             decimal.Decimal
	PaidAmount        decimal.Decimal
	PrevDuePaidAmount decimal.Decimal
	PreviousDue       decimal.Decimal
	TotalBillAmount   decimal.Decimal
	Note              string
	PaymentMethod     PaymentMethod
	CustomerID        *string
	PriceGroupID      *string
	Items             []ItemInput
	Taxes             []TaxInput
}

// Service is the bill settlement engine. It drives the bill lifecycle
// (create, hold, pay, cancel) against the inventory layer and the customer
// ledger; every settlement operation it issues is executed atomically by the
// repository.
type Service struct {
	bills     Repository
	staffs    staff.Repository
	customers customer.Repository
	products  product.Repository
	prices    price.Repository
}

// NewService creates the settlement engine.
func NewService(bills Repository, staffs staff.Repository, customers customer.Repository, products product.Repository, prices price.Repository) *Service {
	return &Service{
		bills:     bills,
		staffs:    staffs,
		customers: customers,
		products:  products,
		prices:    prices,
	}
}

// Create settles a direct sale: the bill is persisted PAID or DUE and every
// item's quantity is sold from the staff member's store in the same
// transaction. Insufficient stock on any item aborts the whole sale.
func (s *Service) Create(ctx context.Context, staffAccountID string, in CreateInput) (*Detail, error) {
	st, err := s.staffs.FindByAccountID(ctx, staffAccountID)
	if err != nil {
		return nil, fmt.Errorf("resolving store for staff %s: %w", staffAccountID, err)
	}

	if err := s.validateCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}

	b, err := s.buildBill(ctx, st, in)
	if err != nil {
		return nil, err
	}

	due := ComputeDue(in.Total, in.PaidAmount, in.PrevDuePaidAmount)
	b.PaidAmount = in.PaidAmount
	b.PrevDuePaidAmount = in.PrevDuePaidAmount
	b.DueAmount = due
	b.Status = StatusForDue(due)
	b.PaymentMethod = in.PaymentMethod

	if err := s.bills.CreateSettled(ctx, b); err != nil {
		return nil, err
	}

	return s.bills.FindByID(ctx, b.ID)
}

// CreateHold saves a bill in HOLD: nothing is paid and nothing is sold, each
// item's quantity is reserved instead so the stock stays earmarked until the
// hold is paid or cancelled.
func (s *Service) CreateHold(ctx context.Context, staffAccountID string, in CreateInput) (*Detail, error) {
	st, err := s.staffs.FindByAccountID(ctx, staffAccountID)
	if err != nil {
		return nil, fmt.Errorf("resolving store for staff %s: %w", staffAccountID, err)
	}

	if err := s.validateCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}

	b, err := s.buildBill(ctx, st, in)
	if err != nil {
		return nil, err
	}

	b.PaidAmount = decimal.Zero
	b.DueAmount = decimal.Zero
	b.PrevDuePaidAmount = decimal.Zero
	b.Status = StatusHold

	if err := s.bills.CreateHold(ctx, b); err != nil {
		return nil, err
	}

	return s.bills.FindByID(ctx, b.ID)
}

// PayHold pays a HOLD bill. Each item's reservation is released and then sold
// in that order, so the quantity is never counted as both reserved and sold.
func (s *Service) PayHold(ctx context.Context, billID string, paidAmount decimal.Decimal, method PaymentMethod) (*Detail, error) {
	if paidAmount.IsNegative() {
		return nil, ErrNegativePaidAmount
	}

	b, err := s.bills.SettleHold(ctx, billID, paidAmount, method)
	if err != nil {
		return nil, err
	}

	return s.bills.FindByID(ctx, b.ID)
}

// CancelHold releases every reservation held by a HOLD bill and removes the
// bill; its items and taxes are removed by cascade.
func (s *Service) CancelHold(ctx context.Context, billID string) error {
	return s.bills.CancelHold(ctx, billID)
}

// Get returns the flattened projection of one bill.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	return s.bills.FindByID(ctx, id)
}

// List returns bills matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Detail, int, error) {
	return s.bills.List(ctx, filter)
}

// ListByStore returns the bills of the authenticated staff member's store.
func (s *Service) ListByStore(ctx context.Context, staffAccountID string, filter Filter) ([]Detail, int, error) {
	st, err := s.staffs.FindByAccountID(ctx, staffAccountID)
	if err != nil {
		return nil, 0, fmt.Errorf("resolving store for staff %s: %w", staffAccountID, err)
	}

	filter.StoreID = st.StoreID
	return s.bills.List(ctx, filter)
}

func (s *Service) validateCustomer(ctx context.Context, customerID *string) error {
	if customerID == nil || *customerID == "" {
		return nil
	}
	if _, err := s.customers.FindByID(ctx, *customerID); err != nil {
		return fmt.Errorf("customer %s: %w", *customerID, err)
	}
	return nil
}

// buildBill assembles the bill aggregate shared by direct sales and holds:
// header amounts from the input plus derived item and tax lines.
func (s *Service) buildBill(ctx context.Context, st *staff.Staff, in CreateInput) (*Bill, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}

	now := time.Now()
	b := &Bill{
		ID:              uuid.New().String(),
		Subtotal:        in.Subtotal,
		TaxAmount:       in.TaxAmount,
		DiscountAmount:  in.DiscountAmount,
		DiscountPercent: in.DiscountPercent,
		Total:           in.Total,
		PreviousDue:     in.PreviousDue,
		TotalBillAmount: in.TotalBillAmount,
		Note:            in.Note,
		CustomerID:      in.CustomerID,
		StoreID:         st.StoreID,
		StaffID:         st.AccountID,
		PriceGroupID:    in.PriceGroupID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for _, it := range in.Items {
		unitPrice, err := s.resolveUnitPrice(ctx, it, in.PriceGroupID)
		if err != nil {
			return nil, err
		}

		item, err := NewItem(it.ProductID, it.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		item.BillID = b.ID
		b.Items = append(b.Items, *item)
	}

	for _, t := range in.Taxes {
		b.Taxes = append(b.Taxes, Tax{
			ID:         uuid.New().String(),
			BillID:     b.ID,
			TaxRateID:  t.TaxRateID,
			TaxName:    t.TaxName,
			TaxPercent: t.TaxPercent,
			TaxAmount:  t.TaxAmount,
		})
	}

	return b, nil
}

// resolveUnitPrice picks an item's unit price: the caller's explicit price
// wins, then the bill's price-group override, then the catalog selling price.
func (s *Service) resolveUnitPrice(ctx context.Context, it ItemInput, priceGroupID *string) (decimal.Decimal, error) {
	if it.UnitPrice.IsPositive() {
		return it.UnitPrice, nil
	}

	if priceGroupID != nil && *priceGroupID != "" {
		p, err := s.prices.GetPrice(ctx, it.ProductID, *priceGroupID)
		if err == nil {
			return p, nil
		}
		// Only a missing override falls through to the selling price; a
		// failed lookup must not silently change the charged price.
		if !errors.Is(err, price.ErrPriceNotFound) {
			return decimal.Zero, fmt.Errorf("price group %s: %w", *priceGroupID, err)
		}
	}

	p, err := s.products.FindByID(ctx, it.ProductID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("product %s: %w", it.ProductID, err)
	}
	return p.SellingPrice, nil
}
