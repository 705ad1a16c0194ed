package dto

import (
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest creates a catalog product
type ProductRequest struct {
	SKU           string          `json:"sku" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
}

// ProductPriceRequest sets a price-group override for a product
type ProductPriceRequest struct {
	PriceGroupID string          `json:"price_group_id" binding:"required"`
	Price        decimal.Decimal `json:"price" binding:"required"`
}

// ProductListResponse is a paginated product listing
type ProductListResponse struct {
	Products   []product.Product `json:"products"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductListResponse builds the paginated product listing
func ToProductListResponse(products []product.Product, totalCount int, p Pagination) ProductListResponse {
	if products == nil {
		products = []product.Product{}
	}
	return ProductListResponse{
		Products:   products,
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: calculateTotalPages(totalCount, p.PageSize),
	}
}
