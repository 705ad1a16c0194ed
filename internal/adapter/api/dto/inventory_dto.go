package dto

import (
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/inventory"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
	"github.com/shopspring/decimal"
)

// CreateInventoryRequest opens the inventory record for a (product, store)
// pair with its first stock-in
type CreateInventoryRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	StoreID   string          `json:"store_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"min=0"`
	CostPrice decimal.Decimal `json:"cost_price"`
	MinStock  int             `json:"min_stock" binding:"min=0"`
}

// StockMovementRequest applies one stock transition to a record. For
// adjustments the quantity is the absolute target stock, not a delta
type StockMovementRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	StoreID   string `json:"store_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

// ReservationRequest reserves or releases units for a pending sale
type ReservationRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	StoreID   string `json:"store_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// TransferRequest moves stock between two stores
type TransferRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	FromStoreID string `json:"from_store_id" binding:"required"`
	ToStoreID   string `json:"to_store_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	Notes       string `json:"notes"`
}

// UpdateCostRequest rewrites a record's cost prices without touching stock
type UpdateCostRequest struct {
	ProductID        string          `json:"product_id" binding:"required"`
	StoreID          string          `json:"store_id" binding:"required"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	AverageCostPrice decimal.Decimal `json:"average_cost_price"`
}

// AvailabilityResponse answers a stock availability check
type AvailabilityResponse struct {
	ProductID string `json:"product_id"`
	StoreID   string `json:"store_id"`
	Quantity  int    `json:"quantity"`
	Available bool   `json:"available"`
}

// InventoryListResponse is a paginated inventory listing
type InventoryListResponse struct {
	Records    []inventory.Record `json:"records"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToInventoryListResponse builds the paginated inventory listing
func ToInventoryListResponse(records []inventory.Record, totalCount int, p Pagination) InventoryListResponse {
	if records == nil {
		records = []inventory.Record{}
	}
	return InventoryListResponse{
		Records:    records,
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: calculateTotalPages(totalCount, p.PageSize),
	}
}

// MovementListResponse is a paginated slice of the append-only stock ledger
type MovementListResponse struct {
	Movements  []movement.Movement `json:"movements"`
	TotalCount int                 `json:"total_count"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// ToMovementListResponse builds the paginated ledger listing
func ToMovementListResponse(movements []movement.Movement, totalCount int, p Pagination) MovementListResponse {
	if movements == nil {
		movements = []movement.Movement{}
	}
	return MovementListResponse{
		Movements:  movements,
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: calculateTotalPages(totalCount, p.PageSize),
	}
}
