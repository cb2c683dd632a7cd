package jwt

import (
	"context"
	"testing"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	u := user.User{
		ID:      "u-1",
		Email:   "raj.kumar@balarbuilders.com",
		Name:    "Raj Kumar",
		Role:    user.RoleEmployee,
		IsAdmin: false,
	}

	tokenString, expiresAt, err := svc.GenerateAccessToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "raj.kumar@balarbuilders.com", claims["email"])
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, false, claims["is_admin"])
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := svc.GenerateAccessToken(user.User{ID: "u-1"})
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	token, _, err := svc.GenerateAccessToken(user.User{ID: "u-1"})
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}
