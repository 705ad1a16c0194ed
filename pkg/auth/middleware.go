package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextAccountID = "account_id"
	ContextStaffName = "staff_name"
	ContextRole      = "role"
	ContextStoreID   = "store_id"
)

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// JWTAuthMiddleware creates a gin middleware that validates the Bearer token
// and stores the staff claims in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	jwtService, err := NewJWTService()
	if err != nil {
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
				Status:  http.StatusInternalServerError,
				Message: "authentication is not configured",
				Detail:  err.Error(),
			})
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Status:  http.StatusUnauthorized,
				Message: "authentication required",
				Detail:  "missing Authorization header",
			})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Status:  http.StatusUnauthorized,
				Message: "invalid token format",
				Detail:  "use 'Bearer <token>'",
			})
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "invalid token"
			if err == ErrExpiredToken {
				message = "expired token"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Status:  http.StatusUnauthorized,
				Message: message,
				Detail:  err.Error(),
			})
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextStaffName, claims.Name)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextStoreID, claims.StoreID)

		c.Next()
	}
}

// AccountID returns the authenticated staff account id from the context.
func AccountID(c *gin.Context) string {
	return c.GetString(ContextAccountID)
}
