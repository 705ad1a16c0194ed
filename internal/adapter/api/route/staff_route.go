package route

import (
	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/controller"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
)

// RegisterStaffRoutes registers the staff assignment routes
func RegisterStaffRoutes(r *gin.RouterGroup, staffController *controller.StaffController) {
	staff := r.Group("/staff")
	staff.Use(auth.JWTAuthMiddleware())
	{
		staff.POST("", staffController.Create)
		staff.GET("", staffController.List)
		staff.GET("/:id", staffController.Get)
	}
}
