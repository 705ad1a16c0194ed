package route

import (
	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/controller"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
)

// RegisterCustomerRoutes registers the billing customer routes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	customers.Use(auth.JWTAuthMiddleware())
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/:id", customerController.Get)
	}
}
