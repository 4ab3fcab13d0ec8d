//go:build unit

package readstore

import (
	"context"
	"testing"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	sharedmock "bookstore-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type MockCartReadQueries struct {
	mock.Mock
}

func (m *MockCartReadQueries) GetCart(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Carts, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Carts), args.Error(1)
}

func (m *MockCartReadQueries) ListCartLines(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.ListCartLinesRow, error) {
	args := m.Called(ctx, db, cartID)
	return args.Get(0).([]sqlc.ListCartLinesRow), args.Error(1)
}

func (m *MockCartReadQueries) GetCartLine(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartLineParams) (sqlc.GetCartLineRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetCartLineRow), args.Error(1)
}

// snapshotDB stands in for the transaction handed out by the unit of work.
type snapshotDB struct {
	sqlc.DBTX
}

func readOnlyUoW(ctrl *gomock.Controller, db sqlc.DBTX) *sharedmock.MockUnitOfWork {
	u := sharedmock.NewMockUnitOfWork(ctrl)
	u.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, db)
		}).Times(1)
	return u
}

func TestCartReadStore_FindByID(t *testing.T) {
	cartID := uuid.New()
	price := pgconv.DecimalToNumeric(decimal.RequireFromString("12.50"))

	t.Run("header and lines share one read-only transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tx := &snapshotDB{}

		q := new(MockCartReadQueries)
		q.On("GetCart", mock.Anything, tx, cartID).Return(sqlc.Carts{ID: cartID}, nil).Once()
		q.On("ListCartLines", mock.Anything, tx, cartID).Return([]sqlc.ListCartLinesRow{
			{ID: 1, BookID: 3, Quantity: 2, BookName: "Clean Code", BookSlug: "clean-code", UnitPrice: price},
		}, nil).Once()

		view, err := NewCartReadStore(q, readOnlyUoW(ctrl, tx)).FindByID(context.Background(), cartID)
		require.NoError(t, err)
		assert.Equal(t, cartID, view.ID)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "25.00", view.TotalPrice.StringFixed(2))
		q.AssertExpectations(t)
	})

	t.Run("missing cart stops before reading lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tx := &snapshotDB{}

		q := new(MockCartReadQueries)
		q.On("GetCart", mock.Anything, tx, cartID).Return(sqlc.Carts{}, pgx.ErrNoRows).Once()

		view, err := NewCartReadStore(q, readOnlyUoW(ctrl, tx)).FindByID(context.Background(), cartID)
		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		q.AssertNotCalled(t, "ListCartLines", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("line query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tx := &snapshotDB{}

		q := new(MockCartReadQueries)
		q.On("GetCart", mock.Anything, tx, cartID).Return(sqlc.Carts{ID: cartID}, nil).Once()
		q.On("ListCartLines", mock.Anything, tx, cartID).Return([]sqlc.ListCartLinesRow(nil), assert.AnError).Once()

		_, err := NewCartReadStore(q, readOnlyUoW(ctrl, tx)).FindByID(context.Background(), cartID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCartReadStore_FindItem(t *testing.T) {
	cartID := uuid.New()
	params := sqlc.GetCartLineParams{ID: 7, CartID: cartID}

	newUoW := func(ctrl *gomock.Controller, db sqlc.DBTX) *sharedmock.MockUnitOfWork {
		u := sharedmock.NewMockUnitOfWork(ctrl)
		u.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
				return fn(ctx, db)
			}).Times(1)
		return u
	}

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := &snapshotDB{}
		q := new(MockCartReadQueries)
		q.On("GetCartLine", mock.Anything, db, params).Return(sqlc.GetCartLineRow{
			ID: 7, BookID: 3, Quantity: 3, BookName: "Clean Code", BookSlug: "clean-code",
			UnitPrice: pgconv.DecimalToNumeric(decimal.RequireFromString("10.00")),
		}, nil).Once()

		item, err := NewCartReadStore(q, newUoW(ctrl, db)).FindItem(context.Background(), cartID, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), item.ID)
		assert.Equal(t, "30.00", item.TotalPrice.StringFixed(2))
	})

	t.Run("item in another cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := &snapshotDB{}
		q := new(MockCartReadQueries)
		q.On("GetCartLine", mock.Anything, db, params).Return(sqlc.GetCartLineRow{}, pgx.ErrNoRows).Once()

		_, err := NewCartReadStore(q, newUoW(ctrl, db)).FindItem(context.Background(), cartID, 7)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
