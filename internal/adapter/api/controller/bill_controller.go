package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/dto"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/bill"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// BillController handles the billing endpoints
type BillController struct {
	billService *bill.Service
	logger      logger.Logger
}

// NewBillController creates a new BillController
func NewBillController(billService *bill.Service, logger logger.Logger) *BillController {
	return &BillController{
		billService: billService,
		logger:      logger,
	}
}

// Create settles a direct sale
// @Summary Create bill
// @Description Creates a settled bill and sells every item's stock in one transaction
// @Tags bills
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param bill body dto.CreateBillRequest true "Bill data"
// @Success 201 {object} bill.Detail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills [post]
func (c *BillController) Create(ctx *gin.Context) {
	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	detail, err := c.billService.Create(ctx, auth.AccountID(ctx), req.ToCreateInput())
	if err != nil {
		respondError(ctx, c.logger, "failed to create bill", err)
		return
	}

	ctx.JSON(http.StatusCreated, detail)
}

// CreateHold parks a bill in HOLD
// @Summary Create hold bill
// @Description Saves a HOLD bill and reserves every item's stock instead of selling it
// @Tags bills
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param bill body dto.CreateBillRequest true "Bill data"
// @Success 201 {object} bill.Detail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills/hold [post]
func (c *BillController) CreateHold(ctx *gin.Context) {
	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	detail, err := c.billService.CreateHold(ctx, auth.AccountID(ctx), req.ToCreateInput())
	if err != nil {
		respondError(ctx, c.logger, "failed to create hold bill", err)
		return
	}

	ctx.JSON(http.StatusCreated, detail)
}

// PayHold settles a HOLD bill
// @Summary Pay hold bill
// @Description Releases and sells each item's reservation, then settles the bill as PAID or DUE
// @Tags bills
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Bill ID"
// @Param payment body dto.PayBillRequest true "Payment data"
// @Success 200 {object} bill.Detail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills/{id}/pay [post]
func (c *BillController) PayHold(ctx *gin.Context) {
	var req dto.PayBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	detail, err := c.billService.PayHold(ctx, ctx.Param("id"), req.PaidAmount, bill.PaymentMethod(req.PaymentMethod))
	if err != nil {
		respondError(ctx, c.logger, "failed to pay hold bill", err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// CancelHold cancels a HOLD bill
// @Summary Cancel hold bill
// @Description Releases every reservation held by the bill and removes it
// @Tags bills
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Bill ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills/{id}/cancel [post]
func (c *BillController) CancelHold(ctx *gin.Context) {
	if err := c.billService.CancelHold(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "failed to cancel hold bill", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("hold bill cancelled", nil))
}

// Get returns one bill
// @Summary Get bill
// @Description Returns the flattened projection of one bill with its items and taxes
// @Tags bills
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Bill ID"
// @Success 200 {object} bill.Detail
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills/{id} [get]
func (c *BillController) Get(ctx *gin.Context) {
	detail, err := c.billService.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "failed to find bill", err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// List returns bills matching the filter
// @Summary List bills
// @Description Returns the paginated list of bills across all stores
// @Tags bills
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param store_id query string false "Filter by store"
// @Param status query string false "Filter by status"
// @Param keyword query string false "Search bill number, customer or store name"
// @Param date query string false "Filter by creation date (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.BillListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills [get]
func (c *BillController) List(ctx *gin.Context) {
	filter, p, ok := c.parseFilter(ctx)
	if !ok {
		return
	}
	filter.StoreID = ctx.Query("store_id")

	bills, total, err := c.billService.List(ctx, filter)
	if err != nil {
		respondError(ctx, c.logger, "failed to list bills", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(bills, total, p))
}

// ListMyStore returns the authenticated staff member's store bills
// @Summary List own store bills
// @Description Returns the paginated list of bills for the staff member's store
// @Tags bills
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status query string false "Filter by status"
// @Param keyword query string false "Search bill number, customer or store name"
// @Param date query string false "Filter by creation date (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.BillListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills/my-store [get]
func (c *BillController) ListMyStore(ctx *gin.Context) {
	filter, p, ok := c.parseFilter(ctx)
	if !ok {
		return
	}

	bills, total, err := c.billService.ListByStore(ctx, auth.AccountID(ctx), filter)
	if err != nil {
		respondError(ctx, c.logger, "failed to list store bills", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(bills, total, p))
}

func (c *BillController) parseFilter(ctx *gin.Context) (bill.Filter, dto.Pagination, bool) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	filter := bill.Filter{
		Status:  bill.Status(ctx.Query("status")),
		Keyword: ctx.Query("keyword"),
		Limit:   p.PageSize,
		Offset:  p.Offset(),
	}

	if raw := ctx.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err.Error()))
			return bill.Filter{}, p, false
		}
		filter.Date = &date
	}

	return filter, p, true
}
