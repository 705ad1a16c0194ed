package dto

import (
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/store"
)

// StoreRequest creates a store. The store code becomes the branch code
// embedded in bill numbers
type StoreRequest struct {
	StoreCode string `json:"store_code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// StoreListResponse is a paginated store listing
type StoreListResponse struct {
	Stores     []store.Store `json:"stores"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// ToStoreListResponse builds the paginated store listing
func ToStoreListResponse(stores []store.Store, totalCount int, p Pagination) StoreListResponse {
	if stores == nil {
		stores = []store.Store{}
	}
	return StoreListResponse{
		Stores:     stores,
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: calculateTotalPages(totalCount, p.PageSize),
	}
}
