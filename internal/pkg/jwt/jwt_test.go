package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpay/smartpay-backend-go/internal/domain/user"
)

func TestJWTService_GenerateAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret-key", "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("emp-1", "EMP-001", user.RoleStaff)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "EMP-001", claims["staff_id"])
	assert.Equal(t, string(user.RoleStaff), claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_GenerateAccessToken_RejectedByOtherSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTService("issuer-secret", "1h")
	verifier := NewJWTService("different-secret", "1h")

	tokenString, _, err := issuer.GenerateAccessToken("emp-1", "EMP-001", user.RoleAdmin)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), tokenString)
	assert.Error(t, err)
}

func TestJWTService_GenerateAccessToken_InvalidExpiration(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("emp-1", "EMP-001", user.RoleStaff)
	assert.Error(t, err)
}
