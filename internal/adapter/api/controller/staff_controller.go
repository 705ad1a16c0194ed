package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/dto"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/staff"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// StaffController handles the staff assignment endpoints
type StaffController struct {
	staffRepo staff.Repository
	logger    logger.Logger
}

// NewStaffController creates a new StaffController
func NewStaffController(staffRepo staff.Repository, logger logger.Logger) *StaffController {
	return &StaffController{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// Create registers a staff member
// @Summary Create staff
// @Description Registers a staff member and assigns them to a store
// @Tags staff
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param staff body dto.StaffRequest true "Staff data"
// @Success 201 {object} staff.Staff
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff [post]
func (c *StaffController) Create(ctx *gin.Context) {
	var req dto.StaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	s, err := staff.New(req.AccountID, req.Name, req.Phone, req.StoreID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid staff data", err.Error()))
		return
	}

	if err := c.staffRepo.Create(ctx, s); err != nil {
		respondError(ctx, c.logger, "failed to create staff", err)
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// Get returns one staff member
// @Summary Get staff
// @Description Returns a staff member by ID
// @Tags staff
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Staff ID"
// @Success 200 {object} staff.Staff
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff/{id} [get]
func (c *StaffController) Get(ctx *gin.Context) {
	s, err := c.staffRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "failed to find staff", err)
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// List returns the staff members
// @Summary List staff
// @Description Returns the paginated staff listing
// @Tags staff
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.StaffListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff [get]
func (c *StaffController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	staffs, total, err := c.staffRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "failed to list staff", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStaffListResponse(staffs, total, p))
}
