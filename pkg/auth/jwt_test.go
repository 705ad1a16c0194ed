package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")

	svc, err := NewJWTService()
	require.NoError(t, err)

	token, err := svc.GenerateToken("acc-1", "Asha", "STAFF", "store-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "STAFF", claims.Role)
	assert.Equal(t, "store-1", claims.StoreID)
	assert.Equal(t, "acc-1", claims.Subject)
}

func TestValidateTokenWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "key-one")
	svcOne, err := NewJWTService()
	require.NoError(t, err)

	token, err := svcOne.GenerateToken("acc-1", "Asha", "STAFF", "store-1")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "key-two")
	svcTwo, err := NewJWTService()
	require.NoError(t, err)

	_, err = svcTwo.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	svc, err := NewJWTService()
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
