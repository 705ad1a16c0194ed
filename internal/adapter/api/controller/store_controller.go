package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/dto"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/store"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// StoreController handles the store endpoints
type StoreController struct {
	storeRepo store.Repository
	logger    logger.Logger
}

// NewStoreController creates a new StoreController
func NewStoreController(storeRepo store.Repository, logger logger.Logger) *StoreController {
	return &StoreController{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// Create creates a store
// @Summary Create store
// @Description Creates an active store; its code becomes the branch code in bill numbers
// @Tags stores
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param store body dto.StoreRequest true "Store data"
// @Success 201 {object} store.Store
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores [post]
func (c *StoreController) Create(ctx *gin.Context) {
	var req dto.StoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	s, err := store.New(req.StoreCode, req.Name, req.Address, req.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid store data", err.Error()))
		return
	}

	if err := c.storeRepo.Create(ctx, s); err != nil {
		respondError(ctx, c.logger, "failed to create store", err)
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// Get returns one store
// @Summary Get store
// @Description Returns a store by ID
// @Tags stores
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Store ID"
// @Success 200 {object} store.Store
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id} [get]
func (c *StoreController) Get(ctx *gin.Context) {
	s, err := c.storeRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "failed to find store", err)
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// List returns the stores
// @Summary List stores
// @Description Returns the paginated store listing
// @Tags stores
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.StoreListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores [get]
func (c *StoreController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	stores, total, err := c.storeRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "failed to list stores", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStoreListResponse(stores, total, p))
}
