//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration)
}

func (h *JWTHelper) CustomerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service(t).GenerateAccessToken(userID, false)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) StaffToken(t *testing.T, userID uuid.UUID, perms ...access.Permission) string {
	t.Helper()
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, string(p))
	}
	token, err := h.service(t).GenerateAccessToken(userID, true, names...)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateAccessToken(userID, false)
	require.NoError(t, err)
	return token
}
