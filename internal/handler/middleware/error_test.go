//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type ErrorMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *ErrorMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.router = gin.New()
	s.router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	s.router.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(errs.Mark(errors.New("no rows"), errs.ErrCartNotFound))
	})
	s.router.GET("/aborted", func(c *gin.Context) {
		httperr.AbortWithUseCaseError(c, errs.ErrEmptyCart)
	})
	s.router.GET("/db", func(c *gin.Context) {
		_ = c.Error(errs.Mark(infra.WrapRepoErr("failed to lock cart", errors.New("conn reset")), errs.ErrDatabaseOperationFailed))
	})
	s.router.GET("/constraint", func(c *gin.Context) {
		_ = c.Error(errs.Mark(infra.WrapRepoErr("failed to update book", nil, infra.KindCheckViolated), errs.ErrConstraintFailed))
	})
	s.router.GET("/no-content", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	s.router.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})
}

func TestErrorMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(ErrorMiddlewareTestSuite))
}

func (s *ErrorMiddlewareTestSuite) TestErrorHandler() {
	cases := []struct {
		name   string
		path   string
		status int
		msg    string
	}{
		{"recorded error resolves through the status table", "/recorded", http.StatusNotFound, "Cart not found"},
		{"aborted response is kept", "/aborted", http.StatusUnprocessableEntity, "Cart is empty"},
		{"database failure hides details", "/db", http.StatusInternalServerError, "Internal server error"},
		{"check violation hides database text", "/constraint", http.StatusBadRequest, "Invalid input"},
		{"panic is recovered", "/panic", http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "")
			httptest.AssertErrorResponse(s.T(), w, tc.status, tc.msg)
		})
	}

	s.Run("bodiless status passes through", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/no-content", nil, "")
		s.Equal(http.StatusNoContent, w.Code)
		s.Empty(w.Body.String())
	})
}
