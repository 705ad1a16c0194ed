package route

import (
	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/controller"
)

// RegisterAuthRoutes registers the token issuance routes
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := r.Group("/auth")
	{
		// Token issuance does not require a token itself
		authRouter.POST("/token", authController.Token)
	}
}
