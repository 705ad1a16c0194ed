package dto

import (
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/customer"
)

// CustomerRequest creates a billing customer
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerListResponse is a paginated customer listing
type CustomerListResponse struct {
	Customers  []customer.Customer `json:"customers"`
	TotalCount int                 `json:"total_count"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// ToCustomerListResponse builds the paginated customer listing
func ToCustomerListResponse(customers []customer.Customer, totalCount int, p Pagination) CustomerListResponse {
	if customers == nil {
		customers = []customer.Customer{}
	}
	return CustomerListResponse{
		Customers:  customers,
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: calculateTotalPages(totalCount, p.PageSize),
	}
}
