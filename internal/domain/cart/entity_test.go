//go:build unit

package cart_test

import (
	"testing"
	"time"

	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/domain/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCart(t *testing.T) {
	now := time.Now()
	a, err := cart.NewCart(now)
	require.NoError(t, err)
	b, err := cart.NewCart(now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, uuid.Version(4), a.ID().Version())
	assert.Equal(t, now, a.CreatedAt())
}

func TestNewAddition(t *testing.T) {
	cases := []struct {
		name     string
		bookID   int64
		quantity int
		errIs    error
	}{
		{name: "single unit", bookID: 1, quantity: 1},
		{name: "max quantity", bookID: 1, quantity: cart.MaxQuantity},
		{name: "zero quantity", bookID: 1, quantity: 0, errIs: cart.ErrNonPositiveQuantity},
		{name: "negative quantity", bookID: 1, quantity: -2, errIs: cart.ErrNonPositiveQuantity},
		{name: "quantity overflow", bookID: 1, quantity: cart.MaxQuantity + 1, errIs: cart.ErrQuantityTooLarge},
		{name: "missing book", bookID: 0, quantity: 1, errIs: cart.ErrInvalidBook},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			add, err := cart.NewAddition(c.bookID, c.quantity)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.quantity, add.Quantity)
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, cart.ValidateQuantity(0))
	assert.NoError(t, cart.ValidateQuantity(10))
	assert.ErrorIs(t, cart.ValidateQuantity(-1), cart.ErrNegativeQuantity)
	assert.ErrorIs(t, cart.ValidateQuantity(cart.MaxQuantity+1), cart.ErrQuantityTooLarge)
}

func TestTotal(t *testing.T) {
	lines := []cart.Line{
		{ItemID: 1, BookID: 10, Quantity: 3, UnitPrice: money.MustPrice("12.50")},
		{ItemID: 2, BookID: 11, Quantity: 1, UnitPrice: money.MustPrice("10.00")},
		{ItemID: 3, BookID: 12, Quantity: 0, UnitPrice: money.MustPrice("99.99")},
	}

	assert.Equal(t, "37.50", lines[0].Total().StringFixed(2))
	assert.Equal(t, "47.50", cart.Total(lines).StringFixed(2))
	assert.True(t, cart.Total(nil).IsZero())
}
