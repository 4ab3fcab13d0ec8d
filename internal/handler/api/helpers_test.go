//go:build unit

package api_test

import (
	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	customerToken = "customer-token"
	staffToken    = "staff-token"
	mailerToken   = "mailer-token"
)

var (
	customerID = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	staffID    = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	mailerID   = uuid.MustParse("33333333-3333-4333-8333-333333333333")

	customerPrincipal = access.NewPrincipal(customerID, false, nil)
	staffPrincipal    = access.NewPrincipal(staffID, true, nil)
	mailerPrincipal   = access.NewPrincipal(mailerID, false, []string{string(access.PermSendPrivateEmail)})
)

// stubValidator accepts a fixed set of opaque tokens.
type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (access.Principal, error) {
	switch token {
	case customerToken:
		return customerPrincipal, nil
	case staffToken:
		return staffPrincipal, nil
	case mailerToken:
		return mailerPrincipal, nil
	}
	return access.Anonymous(), jwt.ErrInvalidToken
}

func newTestEngine() (*gin.Engine, *middleware.AuthMiddleware) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(stubValidator{})
	r.Use(auth.OptionalAuth())
	return r, auth
}
