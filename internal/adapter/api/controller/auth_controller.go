package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/adapter/api/dto"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/internal/domain/staff"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/auth"
	"github.com/AKASH-GHOSH2002/POS-BACKEND/pkg/logger"
)

// AuthController issues access tokens for registered staff accounts.
// Credential verification lives in the upstream identity provider; this
// endpoint only exchanges a known account for a signed token
type AuthController struct {
	staffRepo  staff.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(staffRepo staff.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		staffRepo:  staffRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Token issues an access token
// @Summary Issue token
// @Description Issues a signed access token for a registered staff account
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.TokenRequest true "Token request"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/token [post]
func (c *AuthController) Token(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	s, err := c.staffRepo.FindByAccountID(ctx, req.AccountID)
	if err != nil {
		respondError(ctx, c.logger, "failed to find staff account", err)
		return
	}

	role := req.Role
	if role == "" {
		role = "STAFF"
	}

	token, err := c.jwtService.GenerateToken(s.AccountID, s.Name, role, s.StoreID)
	if err != nil {
		respondError(ctx, c.logger, "failed to issue token", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(c.jwtService.Expiration()),
	})
}
