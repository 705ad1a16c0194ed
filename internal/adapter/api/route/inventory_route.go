package route

import (
	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/controller"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
)

// RegisterInventoryRoutes registers the inventory and stock ledger routes
func RegisterInventoryRoutes(r *gin.RouterGroup, inventoryController *controller.InventoryController) {
	inventory := r.Group("/inventory")
	inventory.Use(auth.JWTAuthMiddleware())
	{
		inventory.POST("", inventoryController.Create)
		inventory.GET("", inventoryController.List)
		inventory.DELETE("", inventoryController.Deactivate)
		inventory.GET("/product/:productId", inventoryController.GetByProduct)
		inventory.GET("/availability", inventoryController.CheckAvailability)
		inventory.GET("/low-stock", inventoryController.LowStock)
		inventory.GET("/movements", inventoryController.Movements)
		inventory.POST("/purchase", inventoryController.Purchase)
		inventory.POST("/sale", inventoryController.Sale)
		inventory.POST("/return", inventoryController.Return)
		inventory.POST("/adjust", inventoryController.Adjust)
		inventory.POST("/reserve", inventoryController.Reserve)
		inventory.POST("/release", inventoryController.Release)
		inventory.POST("/transfer", inventoryController.Transfer)
		inventory.PATCH("/cost", inventoryController.UpdateCost)
	}
}
