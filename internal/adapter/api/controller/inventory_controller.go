package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/dto"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/inventory"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/movement"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// InventoryController handles the inventory and stock ledger endpoints
type InventoryController struct {
	inventoryRepo inventory.Repository
	movementRepo  movement.Repository
	logger        logger.Logger
}

// NewInventoryController creates a new InventoryController
func NewInventoryController(inventoryRepo inventory.Repository, movementRepo movement.Repository, logger logger.Logger) *InventoryController {
	return &InventoryController{
		inventoryRepo: inventoryRepo,
		movementRepo:  movementRepo,
		logger:        logger,
	}
}

// Create opens the inventory record for a (product, store) pair
// @Summary Create inventory record
// @Description Creates the inventory record for a product at a store with its first stock-in
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param inventory body dto.CreateInventoryRequest true "Inventory data"
// @Success 201 {object} inventory.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory [post]
func (c *InventoryController) Create(ctx *gin.Context) {
	var req dto.CreateInventoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	rec, err := inventory.NewRecord(req.ProductID, req.StoreID, req.Quantity, req.CostPrice, req.MinStock)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid inventory data", err.Error()))
		return
	}

	if err := c.inventoryRepo.Create(ctx, rec); err != nil {
		respondError(ctx, c.logger, "failed to create inventory record", err)
		return
	}

	ctx.JSON(http.StatusCreated, rec)
}

// List returns active inventory records
// @Summary List inventory
// @Description Returns the paginated list of active inventory records
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param store_id query string false "Filter by store"
// @Param product_id query string false "Filter by product"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.InventoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory [get]
func (c *InventoryController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	records, total, err := c.inventoryRepo.List(ctx, inventory.Filter{
		StoreID:   ctx.Query("store_id"),
		ProductID: ctx.Query("product_id"),
		Limit:     p.PageSize,
		Offset:    p.Offset(),
	})
	if err != nil {
		respondError(ctx, c.logger, "failed to list inventory", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryListResponse(records, total, p))
}

// GetByProduct returns a product's stock across all stores
// @Summary Inventory by product
// @Description Returns a product's active inventory records across all stores
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param productId path string true "Product ID"
// @Success 200 {array} inventory.Record
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/product/{productId} [get]
func (c *InventoryController) GetByProduct(ctx *gin.Context) {
	records, err := c.inventoryRepo.ListByProduct(ctx, ctx.Param("productId"))
	if err != nil {
		respondError(ctx, c.logger, "failed to list product inventory", err)
		return
	}
	if records == nil {
		records = []inventory.Record{}
	}

	ctx.JSON(http.StatusOK, records)
}

// CheckAvailability answers whether a quantity is sellable right now
// @Summary Check availability
// @Description Reports whether the requested quantity is available at the store
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product_id query string true "Product ID"
// @Param store_id query string true "Store ID"
// @Param quantity query int true "Quantity"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/availability [get]
func (c *InventoryController) CheckAvailability(ctx *gin.Context) {
	productID := ctx.Query("product_id")
	storeID := ctx.Query("store_id")
	qty, err := strconv.Atoi(ctx.Query("quantity"))
	if productID == "" || storeID == "" || err != nil || qty <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "product_id, store_id and a positive quantity are required", ""))
		return
	}

	available, err := c.inventoryRepo.CheckAvailability(ctx, productID, storeID, qty)
	if err != nil {
		respondError(ctx, c.logger, "failed to check availability", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AvailabilityResponse{
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  qty,
		Available: available,
	})
}

// Purchase adds purchased units to stock
// @Summary Record purchase
// @Description Adds the quantity to stock and appends a PURCHASE ledger entry
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param movement body dto.StockMovementRequest true "Movement data"
// @Success 200 {object} inventory.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/purchase [post]
func (c *InventoryController) Purchase(ctx *gin.Context) {
	c.applyMovement(ctx, movement.TypePurchase, "failed to record purchase")
}

// Sale removes sold units from stock
// @Summary Record sale
// @Description Subtracts the quantity from stock and appends a SALE ledger entry
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param movement body dto.StockMovementRequest true "Movement data"
// @Success 200 {object} inventory.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/sale [post]
func (c *InventoryController) Sale(ctx *gin.Context) {
	c.applyMovement(ctx, movement.TypeSale, "failed to record sale")
}

// Return adds returned units back to stock
// @Summary Record return
// @Description Adds the quantity back to stock and appends a RETURN ledger entry
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param movement body dto.StockMovementRequest true "Movement data"
// @Success 200 {object} inventory.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/return [post]
func (c *InventoryController) Return(ctx *gin.Context) {
	c.applyMovement(ctx, movement.TypeReturn, "failed to record return")
}

// Adjust sets stock to an absolute value
// @Summary Adjust stock
// @Description Sets the stock to the given quantity (an override, not a delta) and appends an ADJUSTMENT ledger entry
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param movement body dto.StockMovementRequest true "Movement data"
// @Success 200 {object} inventory.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/adjust [post]
func (c *InventoryController) Adjust(ctx *gin.Context) {
	c.applyMovement(ctx, movement.TypeAdjustment, "failed to adjust stock")
}

func (c *InventoryController) applyMovement(ctx *gin.Context, t movement.Type, failMessage string) {
	var req dto.StockMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	in := inventory.MovementInput{
		Reference: req.Reference,
		Notes:     req.Notes,
	}
	if accountID := auth.AccountID(ctx); accountID != "" {
		in.UserID = &accountID
	}

	rec, err := c.inventoryRepo.ApplyMovement(ctx, req.ProductID, req.StoreID, t, req.Quantity, in)
	if err != nil {
		respondError(ctx, c.logger, failMessage, err)
		return
	}

	ctx.JSON(http.StatusOK, rec)
}

// Reserve earmarks units for a pending sale
// @Summary Reserve stock
// @Description Earmarks the quantity against available stock; on-hand stock is unchanged
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param reservation body dto.ReservationRequest true "Reservation data"
// @Success 200 {object} inventory.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/reserve [post]
func (c *InventoryController) Reserve(ctx *gin.Context) {
	var req dto.ReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	rec, err := c.inventoryRepo.Reserve(ctx, req.ProductID, req.StoreID, req.Quantity)
	if err != nil {
		respondError(ctx, c.logger, "failed to reserve stock", err)
		return
	}

	ctx.JSON(http.StatusOK, rec)
}

// Release returns reserved units to the available pool
// @Summary Release reservation
// @Description Returns the quantity from the reserved counter to the available pool
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param reservation body dto.ReservationRequest true "Reservation data"
// @Success 200 {object} inventory.Record
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/release [post]
func (c *InventoryController) Release(ctx *gin.Context) {
	var req dto.ReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	rec, err := c.inventoryRepo.Release(ctx, req.ProductID, req.StoreID, req.Quantity)
	if err != nil {
		respondError(ctx, c.logger, "failed to release stock", err)
		return
	}

	ctx.JSON(http.StatusOK, rec)
}

// Transfer moves stock between stores
// @Summary Transfer stock
// @Description Moves the quantity from one store to another in a single transaction
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param transfer body dto.TransferRequest true "Transfer data"
// @Success 200 {object} inventory.TransferResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/transfer [post]
func (c *InventoryController) Transfer(ctx *gin.Context) {
	var req dto.TransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	in := inventory.MovementInput{Notes: req.Notes}
	if accountID := auth.AccountID(ctx); accountID != "" {
		in.UserID = &accountID
	}

	result, err := c.inventoryRepo.Transfer(ctx, req.ProductID, req.FromStoreID, req.ToStoreID, req.Quantity, in)
	if err != nil {
		respondError(ctx, c.logger, "failed to transfer stock", err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Movements returns the stock ledger
// @Summary List stock movements
// @Description Returns the append-only stock ledger, newest first
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product_id query string false "Filter by product"
// @Param store_id query string false "Filter by store"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.MovementListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/movements [get]
func (c *InventoryController) Movements(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	movements, total, err := c.movementRepo.List(ctx, movement.Filter{
		ProductID: ctx.Query("product_id"),
		StoreID:   ctx.Query("store_id"),
		Limit:     p.PageSize,
		Offset:    p.Offset(),
	})
	if err != nil {
		respondError(ctx, c.logger, "failed to list stock movements", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(movements, total, p))
}

// LowStock returns the records at or below their minimum stock
// @Summary List low stock
// @Description Returns active records whose stock is at or below their minimum
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param store_id query string false "Filter by store"
// @Success 200 {array} inventory.Record
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/low-stock [get]
func (c *InventoryController) LowStock(ctx *gin.Context) {
	records, err := c.inventoryRepo.ListLowStock(ctx, ctx.Query("store_id"))
	if err != nil {
		respondError(ctx, c.logger, "failed to list low stock", err)
		return
	}
	if records == nil {
		records = []inventory.Record{}
	}

	ctx.JSON(http.StatusOK, records)
}

// UpdateCost rewrites a record's cost prices
// @Summary Update cost prices
// @Description Updates a record's cost and average cost without touching stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cost body dto.UpdateCostRequest true "Cost data"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/cost [patch]
func (c *InventoryController) UpdateCost(ctx *gin.Context) {
	var req dto.UpdateCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	if err := c.inventoryRepo.UpdateCost(ctx, req.ProductID, req.StoreID, req.CostPrice, req.AverageCostPrice); err != nil {
		respondError(ctx, c.logger, "failed to update cost", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cost updated", nil))
}

// Deactivate soft-deletes an inventory record
// @Summary Deactivate inventory record
// @Description Marks the record inactive; inventory records are never hard-deleted
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product_id query string true "Product ID"
// @Param store_id query string true "Store ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory [delete]
func (c *InventoryController) Deactivate(ctx *gin.Context) {
	productID := ctx.Query("product_id")
	storeID := ctx.Query("store_id")
	if productID == "" || storeID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "product_id and store_id are required", ""))
		return
	}

	if err := c.inventoryRepo.Deactivate(ctx, productID, storeID); err != nil {
		respondError(ctx, c.logger, "failed to deactivate inventory record", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
