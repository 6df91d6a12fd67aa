package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-task-api/internal/services"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := services.NewJWTService("test_very_secret_jwt_key_here")

	token, err := svc.GenerateToken("cli", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cli", claims.Subject)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := services.NewJWTService("test_very_secret_jwt_key_here")

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken("cli", -time.Minute)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := services.NewJWTService("another").GenerateToken("cli", time.Hour)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("invalid.jwt.token")
		assert.Error(t, err)
	})
}
