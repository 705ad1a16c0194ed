package dto

import (
	"time"
)

// TokenRequest asks for an access token on behalf of a registered staff
// account. Credential verification is handled by the upstream identity
// provider; this endpoint only mints tokens for already-known accounts
type TokenRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Role      string `json:"role"`
}

// TokenResponse carries a freshly minted access token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
