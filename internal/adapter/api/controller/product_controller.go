package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/dto"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/price"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/product"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// ProductController handles the catalog endpoints the core depends on
type ProductController struct {
	productRepo product.Repository
	priceRepo   price.Repository
	logger      logger.Logger
}

// NewProductController creates a new ProductController
func NewProductController(productRepo product.Repository, priceRepo price.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		priceRepo:   priceRepo,
		logger:      logger,
	}
}

// Create creates a catalog product
// @Summary Create product
// @Description Creates an active catalog product
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Product data"
// @Success 201 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	p, err := product.New(req.SKU, req.Name, req.PurchasePrice, req.SellingPrice)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid product data", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, p); err != nil {
		respondError(ctx, c.logger, "failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// Get returns one product
// @Summary Get product
// @Description Returns a product by ID
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Product ID"
// @Success 200 {object} product.Product
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "failed to find product", err)
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// List returns the product catalog
// @Summary List products
// @Description Returns the paginated product catalog
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	products, total, err := c.productRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "failed to list products", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, p))
}

// SetPrice sets a price-group override for a product
// @Summary Set product price
// @Description Creates or replaces the product's price for a price group
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Product ID"
// @Param price body dto.ProductPriceRequest true "Price data"
// @Success 200 {object} price.ProductPrice
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/prices [put]
func (c *ProductController) SetPrice(ctx *gin.Context) {
	var req dto.ProductPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	productID := ctx.Param("id")
	if _, err := c.productRepo.FindByID(ctx, productID); err != nil {
		respondError(ctx, c.logger, "failed to find product", err)
		return
	}

	pp := price.New(productID, req.PriceGroupID, req.Price)
	if err := c.priceRepo.Upsert(ctx, pp); err != nil {
		respondError(ctx, c.logger, "failed to set product price", err)
		return
	}

	ctx.JSON(http.StatusOK, pp)
}
