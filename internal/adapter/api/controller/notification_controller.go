package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/dto"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/notification"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// NotificationController handles the back-office notification endpoints
type NotificationController struct {
	notificationRepo notification.Repository
	logger           logger.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationRepo notification.Repository, logger logger.Logger) *NotificationController {
	return &NotificationController{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List returns the notifications
// @Summary List notifications
// @Description Returns the paginated notification listing, newest first
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.NotificationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	p := dto.GetPagination(page, size)

	notifications, total, err := c.notificationRepo.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		respondError(ctx, c.logger, "failed to list notifications", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications, total, p))
}

// MarkRead marks a notification as read
// @Summary Mark notification read
// @Description Marks one notification as read
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.notificationRepo.MarkRead(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "failed to mark notification read", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notification marked as read", nil))
}
