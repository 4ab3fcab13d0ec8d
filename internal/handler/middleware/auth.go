package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/pkg/cookie"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey = "principal"
	ctxClaimsKey    = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setPrincipal(c *gin.Context, p access.Principal) {
	c.Set(ctxPrincipalKey, p)
	role := "customer"
	if p.IsStaff() {
		role = "staff"
	}
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": p.UserID.String(),
		"role":    role,
	})
}

// OptionalAuth resolves the caller when a token is present. Requests without
// a token proceed as anonymous; a bad token is rejected.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		p, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setPrincipal(c, p)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		p, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setPrincipal(c, p)
		c.Next()
	}
}

// RequireStaff must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetPrincipal(c).IsStaff() {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the caller, anonymous when no token was presented.
func GetPrincipal(c *gin.Context) access.Principal {
	if v, exists := c.Get(ctxPrincipalKey); exists {
		if p, ok := v.(access.Principal); ok {
			return p
		}
	}
	return access.Anonymous()
}
