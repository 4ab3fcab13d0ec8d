package httperr

import (
	"net/http"

	"bookstore-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// ordered: specific sentinels before the generic validation mark
var mappings = []mapping{
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
	{errs.ErrForbidden, http.StatusForbidden, "Permission denied"},
	{errs.ErrBookNotFound, http.StatusNotFound, "Book not found"},
	{errs.ErrCategoryNotFound, http.StatusNotFound, "Category not found"},
	{errs.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
	{errs.ErrCartNotFound, http.StatusNotFound, "Cart not found"},
	{errs.ErrCartItemNotFound, http.StatusNotFound, "Cart item not found"},
	{errs.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
	{errs.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{errs.ErrEmptyCart, http.StatusUnprocessableEntity, "Cart is empty"},
	{errs.ErrCustomerProfileMissing, http.StatusUnprocessableEntity, "Customer profile required before checkout"},
	{errs.ErrInvalidStatusTransition, http.StatusUnprocessableEntity, "Invalid order status transition"},
	{errs.ErrConflict, http.StatusConflict, "Conflicting state"},
	{errs.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrConstraintFailed, http.StatusBadRequest, "Invalid input"},
	{errs.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
}

// Status resolves the HTTP status and public message for a use case error.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	if errs.Is(err, errs.ErrDomainValidation) {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := Status(err)
	AbortWithError(c, status, err, msg, nil)
}
