package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/dto"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/customer"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// CustomerController handles the billing customer endpoints
type CustomerController struct {
	customerRepo customer.Repository
	logger       logger.Logger
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(customerRepo customer.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create creates a customer
// @Summary Create customer
// @Description Creates a billing customer with zeroed totals
// @Tags customers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param customer body dto.CustomerRequest true "Customer data"
// @Success 201 {object} customer.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	cust, err := customer.New(req.Name, req.Phone, req.Address)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid customer data", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, cust); err != nil {
		respondError(ctx, c.logger, "failed to create customer", err)
		return
	}

	ctx.JSON(http.StatusCreated, cust)
}

// Get returns one customer
// @Summary Get customer
// @Description Returns a customer with its running due and purchase totals
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Customer ID"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	cust, err := c.customerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "failed to find customer", err)
		return
	}

	ctx.JSON(http.StatusOK, cust)
}

// List returns the customers
// @Summary List customers
// @Description Returns the paginated customer listing
// @Tags customers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	customers, total, err := c.customerRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "failed to list customers", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, total, p))
}
