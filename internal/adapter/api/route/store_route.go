package route

import (
	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/controller"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
)

// RegisterStoreRoutes registers the store routes
func RegisterStoreRoutes(r *gin.RouterGroup, storeController *controller.StoreController) {
	stores := r.Group("/stores")
	stores.Use(auth.JWTAuthMiddleware())
	{
		stores.POST("", storeController.Create)
		stores.GET("", storeController.List)
		stores.GET("/:id", storeController.Get)
	}
}
