//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"bookstore-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps staff flag and permissions", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Minute)
		userID := uuid.New()

		token, err := svc.GenerateAccessToken(userID, true, "send_private_email")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.True(t, claims.IsStaff)
		assert.Equal(t, []string{"send_private_email"}, claims.Permissions)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateAccessToken(uuid.New(), false)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Minute).GenerateAccessToken(uuid.New(), false)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Minute).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Minute).ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
