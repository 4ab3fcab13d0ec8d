//go:build unit

package middleware_test

import (
	"net/http"
	"regexp"
	"strings"
	"testing"

	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type LoggingMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	seen   string
}

func (s *LoggingMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.seen = ""

	s.router = gin.New()
	s.router.Use(middleware.NewLogger(config.NewTestConfig().Log).LoggingMiddleware())
	s.router.GET("/ping", func(c *gin.Context) {
		s.seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})
}

func TestLoggingMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(LoggingMiddlewareTestSuite))
}

func (s *LoggingMiddlewareTestSuite) TestRequestID() {
	s.Run("client id is echoed and exposed to handlers", func() {
		w := httptest.PerformGetWithHeaders(s.T(), s.router, "/ping", map[string]string{"X-Request-ID": "checkout-42"})

		s.Equal(http.StatusNoContent, w.Code)
		httptest.AssertHeaders(s.T(), w, map[string]string{"X-Request-ID": "checkout-42"})
		s.Equal("checkout-42", s.seen)
	})

	s.Run("missing id is generated", func() {
		w := httptest.PerformGetWithHeaders(s.T(), s.router, "/ping", nil)

		id := w.Header().Get("X-Request-ID")
		s.Regexp(regexp.MustCompile(`^\d{14}-[0-9a-f]{8}$`), id)
		httptest.AssertHeaders(s.T(), w, map[string]string{"X-Request-ID": s.seen})
	})

	s.Run("oversized id is replaced", func() {
		long := strings.Repeat("a", 65)
		w := httptest.PerformGetWithHeaders(s.T(), s.router, "/ping", map[string]string{"X-Request-ID": long})

		s.NotEqual(long, w.Header().Get("X-Request-ID"))
		s.NotEmpty(s.seen)
	})
}
