//go:build unit

package book_test

import (
	"strings"
	"testing"
	"time"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/money"
	"bookstore-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	price := decimal.RequireFromString("12.50")

	t.Run("basic success case", func(t *testing.T) {
		b, err := book.NewBook("  The Go Programming Language ", "desc", 1, 3, price, now)
		require.NoError(t, err)

		assert.Equal(t, "The Go Programming Language", b.Name())
		assert.Equal(t, "the-go-programming-language", b.Slug())
		assert.True(t, b.UnitPrice().Equal(money.MustPrice("12.50")))
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, b.CreatedAt(), b.UpdatedAt())
	})

	cases := []struct {
		name       string
		bookName   string
		categoryID int64
		inventory  int
		price      string
		errIs      error
	}{
		{name: "name at minimum length", bookName: "Dune 2", categoryID: 1, price: "1"},
		{name: "name below minimum length", bookName: "Dune", categoryID: 1, price: "1", errIs: book.ErrNameTooShort},
		{name: "name above maximum length", bookName: strings.Repeat("a", 251), categoryID: 1, price: "1", errIs: book.ErrNameTooLong},
		{name: "missing category", bookName: "Missing category", categoryID: 0, price: "1", errIs: book.ErrInvalidCategory},
		{name: "negative inventory", bookName: "Negative stock", categoryID: 1, inventory: -1, price: "1", errIs: book.ErrNegativeInventory},
		{name: "negative price", bookName: "Negative price", categoryID: 1, price: "-1", errIs: money.ErrNegativePrice},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := book.NewBook(c.bookName, "", c.categoryID, c.inventory, decimal.RequireFromString(c.price), now)
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, b)
				return
			}
			require.Nil(t, b)
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		})
	}
}

func TestBook_Revise(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	later := created.Add(time.Hour)
	orig := book.ReconstructBook(7, "Old title", "", 1, "old-title", 1, money.MustPrice("5.00"), created, created)

	revised, err := orig.Revise("New title here", "d", 2, 4, decimal.RequireFromString("6.25"), later)
	require.NoError(t, err)
	assert.Equal(t, int64(7), revised.ID())
	assert.Equal(t, "new-title-here", revised.Slug())
	assert.Equal(t, created, revised.CreatedAt())
	assert.Equal(t, later, revised.UpdatedAt())

	_, err = orig.Revise("short", "", 2, 4, decimal.RequireFromString("6.25"), later)
	require.ErrorIs(t, err, book.ErrNameTooShort)
}
