//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"marked not found keeps its sentinel", errs.Mark(errors.New("no rows"), errs.ErrCartNotFound), http.StatusNotFound, "Cart not found"},
		{"wrapped transition error", errs.Wrap(errs.ErrInvalidStatusTransition, "canceled -> paid"), http.StatusUnprocessableEntity, "Invalid order status transition"},
		{"profile missing", errs.ErrCustomerProfileMissing, http.StatusUnprocessableEntity, "Customer profile required before checkout"},
		{"conflict", errs.Mark(errors.New("fk"), errs.ErrConflict), http.StatusConflict, "Conflicting state"},
		{"validation uses the domain message", cart.ErrQuantityTooLarge, http.StatusBadRequest, "quantity exceeds the maximum allowed"},
		{"check violation hides database text", errs.Mark(infra.WrapRepoErr("failed to update book", &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"}, infra.KindCheckViolated), errs.ErrConstraintFailed), http.StatusBadRequest, "Invalid input"},
		{"database failure hides details", errs.Mark(errors.New("connection reset"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.Status(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, msg)
		})
	}
}
