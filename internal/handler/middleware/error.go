package middleware

import (
	"log/slog"
	"net/http"

	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/infra"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors a handler recorded but did not answer, and logs
// the cause of every 5xx response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if c.Writer.Written() {
			if last != nil {
				logServerFailure(c, last.Err)
			}
			return
		}

		if last == nil {
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Writer.WriteHeaderNow()
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
			return
		}

		resp, ok := last.Meta.(httperr.Response)
		if !ok || !last.IsType(gin.ErrorTypePublic) {
			status, msg := httperr.Status(last.Err)
			resp = httperr.Response{Status: status}
			resp.Error.Message = msg
		}
		c.JSON(resp.Status, resp)
		logServerFailure(c, last.Err)
	}
}

func logServerFailure(c *gin.Context, err error) {
	status := c.Writer.Status()
	if status < http.StatusInternalServerError {
		return
	}
	attrs := []any{
		"request_id", GetRequestID(c),
		"route", c.FullPath(),
		"status", status,
		"error", err.Error(),
	}
	if kind, ok := infra.KindOf(err); ok {
		attrs = append(attrs, "repo_kind", string(kind))
	}
	slog.Error("request failed", attrs...)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "request_id", GetRequestID(c), "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
