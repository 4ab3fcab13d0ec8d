//go:build unit

package repository

import (
	"context"
	"testing"

	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartWriteQueries struct {
	mock.Mock
}

func (m *MockCartWriteQueries) CreateCart(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCartParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockCartWriteQueries) LockCartShared(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCartWriteQueries) LockCartForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCartWriteQueries) UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) (sqlc.UpsertCartItemRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.UpsertCartItemRow), args.Error(1)
}

func (m *MockCartWriteQueries) UpdateCartItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartItemQuantityParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartWriteQueries) DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCartWriteQueries) ListCartLines(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.ListCartLinesRow, error) {
	args := m.Called(ctx, db, cartID)
	return args.Get(0).([]sqlc.ListCartLinesRow), args.Error(1)
}

func (m *MockCartWriteQueries) DeleteCart(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestCartRepository_LockShared(t *testing.T) {
	cartID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "missing cart", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockCartWriteQueries)
			q.On("LockCartShared", mock.Anything, mock.Anything, cartID).Return(cartID, tt.mockError)

			err := NewCartRepository(q).LockShared(context.Background(), nil, cartID)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			q.AssertExpectations(t)
		})
	}
}

func TestCartRepository_AddItem(t *testing.T) {
	cartID := uuid.New()
	add, err := cart.NewAddition(9, 3)
	require.NoError(t, err)
	params := sqlc.UpsertCartItemParams{CartID: cartID, BookID: 9, Quantity: 3}

	t.Run("returns merged quantity", func(t *testing.T) {
		q := new(MockCartWriteQueries)
		q.On("UpsertCartItem", mock.Anything, mock.Anything, params).
			Return(sqlc.UpsertCartItemRow{ID: 41, Quantity: 5}, nil)

		itemID, qty, err := NewCartRepository(q).AddItem(context.Background(), nil, cartID, add)
		require.NoError(t, err)
		assert.Equal(t, int64(41), itemID)
		assert.Equal(t, 5, qty)
	})

	cases := []struct {
		name     string
		code     string
		wantKind infra.RepositoryErrorKind
	}{
		{name: "unknown book", code: "23503", wantKind: infra.KindForeignKeyViolated},
		{name: "merged quantity over limit", code: "23514", wantKind: infra.KindCheckViolated},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := new(MockCartWriteQueries)
			q.On("UpsertCartItem", mock.Anything, mock.Anything, params).
				Return(sqlc.UpsertCartItemRow{}, &pgconn.PgError{Code: c.code})

			_, _, err := NewCartRepository(q).AddItem(context.Background(), nil, cartID, add)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, c.wantKind))
		})
	}
}

func TestCartRepository_RowsAffected(t *testing.T) {
	cartID := uuid.New()

	t.Run("set quantity on item of another cart", func(t *testing.T) {
		q := new(MockCartWriteQueries)
		q.On("UpdateCartItemQuantity", mock.Anything, mock.Anything,
			sqlc.UpdateCartItemQuantityParams{ID: 7, CartID: cartID, Quantity: 2}).Return(int64(0), nil)

		err := NewCartRepository(q).SetItemQuantity(context.Background(), nil, cartID, 7, 2)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("remove existing item", func(t *testing.T) {
		q := new(MockCartWriteQueries)
		q.On("DeleteCartItem", mock.Anything, mock.Anything,
			sqlc.DeleteCartItemParams{ID: 7, CartID: cartID}).Return(int64(1), nil)

		assert.NoError(t, NewCartRepository(q).RemoveItem(context.Background(), nil, cartID, 7))
	})

	t.Run("delete missing cart", func(t *testing.T) {
		q := new(MockCartWriteQueries)
		q.On("DeleteCart", mock.Anything, mock.Anything, cartID).Return(int64(0), nil)

		err := NewCartRepository(q).Delete(context.Background(), nil, cartID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCartRepository_Lines(t *testing.T) {
	cartID := uuid.New()
	price := pgconv.DecimalToNumeric(decimalFromString(t, "12.50"))

	q := new(MockCartWriteQueries)
	q.On("ListCartLines", mock.Anything, mock.Anything, cartID).Return([]sqlc.ListCartLinesRow{
		{ID: 1, BookID: 3, Quantity: 2, BookName: "Clean Code", BookSlug: "clean-code", UnitPrice: price},
		{ID: 2, BookID: 4, Quantity: 0, BookName: "Refactoring", BookSlug: "refactoring", UnitPrice: price},
	}, nil)

	lines, err := NewCartRepository(q).Lines(context.Background(), nil, cartID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "25.00", lines[0].Total().StringFixed(2))
	assert.Equal(t, 0, lines[1].Quantity)
	assert.Equal(t, "25.00", cart.Total(lines).StringFixed(2))
}
