package route

import (
	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/controller"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
)

// RegisterNotificationRoutes registers the notification routes
func RegisterNotificationRoutes(r *gin.RouterGroup, notificationController *controller.NotificationController) {
	notifications := r.Group("/notifications")
	notifications.Use(auth.JWTAuthMiddleware())
	{
		notifications.GET("", notificationController.List)
		notifications.PATCH("/:id/read", notificationController.MarkRead)
	}
}
