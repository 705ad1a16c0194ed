package dto

import (
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/staff"
)

// StaffRequest registers a staff member against an external auth account
type StaffRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	StoreID   string `json:"store_id" binding:"required"`
}

// StaffListResponse is a paginated staff listing
type StaffListResponse struct {
	Staff      []staff.Staff `json:"staff"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// ToStaffListResponse builds the paginated staff listing
func ToStaffListResponse(staffs []staff.Staff, totalCount int, p Pagination) StaffListResponse {
	if staffs == nil {
		staffs = []staff.Staff{}
	}
	return StaffListResponse{
		Staff:      staffs,
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: calculateTotalPages(totalCount, p.PageSize),
	}
}
