package route

import (
	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/controller"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
)

// RegisterBillRoutes registers the billing routes
func RegisterBillRoutes(r *gin.RouterGroup, billController *controller.BillController) {
	bills := r.Group("/bills")
	bills.Use(auth.JWTAuthMiddleware())
	{
		bills.POST("", billController.Create)
		bills.GET("", billController.List)
		bills.POST("/hold", billController.CreateHold)
		bills.GET("/my-store", billController.ListMyStore)
		bills.GET("/:id", billController.Get)
		bills.POST("/:id/pay", billController.PayHold)
		bills.POST("/:id/cancel", billController.CancelHold)
	}
}
