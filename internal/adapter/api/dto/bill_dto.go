package dto

import (
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/bill"
	"github.com/shopspring/decimal"
)

// BillItemRequest is one requested bill line. A zero unit price lets the
// server resolve it from the price group or the catalog
type BillItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// BillTaxRequest is one requested tax line
type BillTaxRequest struct {
	TaxRateID  *string         `json:"tax_rate_id"`
	TaxName    string          `json:"tax_name" binding:"required"`
	TaxPercent decimal.Decimal `json:"tax_percent"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
}

// CreateBillRequest carries the checkout amounts computed by the sale panel
type CreateBillRequest struct {
	Subtotal          decimal.Decimal   `json:"subtotal"`
	TaxAmount         decimal.Decimal   `json:"tax_amount"`
	DiscountAmount    decimal.Decimal   `json:"discount_amount"`
	DiscountPercent   decimal.Decimal   `json:"discount_percent"`
	Total             decimal.Decimal   `json:"total" binding:"required"`
	PaidAmount        decimal.Decimal   `json:"paid_amount"`
	PrevDuePaidAmount decimal.Decimal   `json:"prev_due_paid_amount"`
	PreviousDue       decimal.Decimal   `json:"previous_due"`
	TotalBillAmount   decimal.Decimal   `json:"total_bill_amount"`
	Note              string            `json:"note"`
	PaymentMethod     string            `json:"payment_method"`
	CustomerID        *string           `json:"customer_id"`
	PriceGroupID      *string           `json:"price_group_id"`
	Items             []BillItemRequest `json:"items" binding:"required,min=1,dive"`
	Taxes             []BillTaxRequest  `json:"taxes" binding:"dive"`
}

// ToCreateInput converts the request into the settlement engine's input
func (r CreateBillRequest) ToCreateInput() bill.CreateInput {
	in := bill.CreateInput{
		Subtotal:          r.Subtotal,
		TaxAmount:         r.TaxAmount,
		DiscountAmount:    r.DiscountAmount,
		DiscountPercent:   r.DiscountPercent,
		Total:             r.Total,
		PaidAmount:        r.PaidAmount,
		PrevDuePaidAmount: r.PrevDuePaidAmount,
		PreviousDue:       r.PreviousDue,
		TotalBillAmount:   r.TotalBillAmount,
		Note:              r.Note,
		PaymentMethod:     bill.PaymentMethod(r.PaymentMethod),
		CustomerID:        r.CustomerID,
		PriceGroupID:      r.PriceGroupID,
	}

	for _, it := range r.Items {
		in.Items = append(in.Items, bill.ItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	for _, t := range r.Taxes {
		in.Taxes = append(in.Taxes, bill.TaxInput{
			TaxRateID:  t.TaxRateID,
			TaxName:    t.TaxName,
			TaxPercent: t.TaxPercent,
			TaxAmount:  t.TaxAmount,
		})
	}

	return in
}

// PayBillRequest settles a HOLD bill
type PayBillRequest struct {
	PaidAmount    decimal.Decimal `json:"paid_amount" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
}

// BillListResponse is a paginated bill listing
type BillListResponse struct {
	Bills      []bill.Detail `json:"bills"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// ToBillListResponse builds the paginated bill listing
func ToBillListResponse(bills []bill.Detail, totalCount int, p Pagination) BillListResponse {
	if bills == nil {
		bills = []bill.Detail{}
	}
	return BillListResponse{
		Bills:      bills,
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: calculateTotalPages(totalCount, p.PageSize),
	}
}
