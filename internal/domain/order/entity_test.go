//go:build unit

package order_test

import (
	"errors"
	"testing"
	"time"

	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/domain/money"
	"bookstore-api/internal/domain/order"
	"bookstore-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromCart(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("copies quantity and current price per line", func(t *testing.T) {
		lines := []cart.Line{
			{ItemID: 1, BookID: 10, Quantity: 3, UnitPrice: money.MustPrice("12.50")},
			{ItemID: 2, BookID: 11, Quantity: 1, UnitPrice: money.MustPrice("10.00")},
		}

		o, err := order.NewFromCart(7, lines, now)
		require.NoError(t, err)

		assert.Equal(t, int64(7), o.CustomerID())
		assert.Equal(t, order.StatusUnpaid, o.Status())
		require.Len(t, o.Items(), 2)
		assert.Equal(t, int64(10), o.Items()[0].BookID())
		assert.Equal(t, 3, o.Items()[0].Quantity())
		assert.True(t, o.Items()[0].UnitPrice().Equal(money.MustPrice("12.50")))
		assert.Equal(t, "47.50", o.Total().StringFixed(2))
	})

	t.Run("later changes to the cart line do not leak into the order", func(t *testing.T) {
		lines := []cart.Line{{ItemID: 1, BookID: 10, Quantity: 2, UnitPrice: money.MustPrice("5.00")}}
		o, err := order.NewFromCart(1, lines, now)
		require.NoError(t, err)

		lines[0].UnitPrice = money.MustPrice("50.00")
		assert.True(t, o.Items()[0].UnitPrice().Equal(money.MustPrice("5.00")))
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := order.NewFromCart(1, nil, now)
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("only zero quantity lines counts as empty", func(t *testing.T) {
		lines := []cart.Line{{ItemID: 1, BookID: 10, Quantity: 0, UnitPrice: money.MustPrice("5.00")}}
		_, err := order.NewFromCart(1, lines, now)
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})
}

func TestChangeStatus(t *testing.T) {
	now := time.Now()
	cases := []struct {
		from    order.Status
		to      order.Status
		changed bool
		allowed bool
	}{
		{order.StatusUnpaid, order.StatusPaid, true, true},
		{order.StatusUnpaid, order.StatusCanceled, true, true},
		{order.StatusPaid, order.StatusCanceled, true, true},
		{order.StatusPaid, order.StatusPaid, false, true},
		{order.StatusPaid, order.StatusUnpaid, false, false},
		{order.StatusCanceled, order.StatusPaid, false, false},
		{order.StatusCanceled, order.StatusUnpaid, false, false},
		{order.StatusCanceled, order.StatusCanceled, false, true},
	}
	for _, c := range cases {
		t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
			o := order.Reconstruct(1, 1, c.from, nil, now, now)
			changed, err := o.ChangeStatus(c.to, now.Add(time.Minute))
			assert.Equal(t, c.changed, changed)
			if !c.allowed {
				require.True(t, errors.Is(err, errs.ErrInvalidStatusTransition))
				assert.Equal(t, c.from, o.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.to, o.Status())
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"unpaid", "paid", "canceled"} {
		st, err := order.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}
	_, err := order.ParseStatus("shipped")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}
