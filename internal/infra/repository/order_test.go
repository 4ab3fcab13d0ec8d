//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/domain/money"
	"bookstore-api/internal/domain/order"
	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderWriteQueries struct {
	mock.Mock
}

func (m *MockOrderWriteQueries) CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderWriteQueries) CopyOrderItems(ctx context.Context, db sqlc.DBTX, arg []sqlc.CopyOrderItemsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderWriteQueries) GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Orders, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Orders), args.Error(1)
}

func (m *MockOrderWriteQueries) UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestOrderRepository_Create(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	o, err := order.NewFromCart(5, []cart.Line{
		{BookID: 1, Quantity: 2, UnitPrice: money.MustPrice("10.00")},
		{BookID: 2, Quantity: 1, UnitPrice: money.MustPrice("3.50")},
	}, now)
	require.NoError(t, err)

	t.Run("writes header then items", func(t *testing.T) {
		q := new(MockOrderWriteQueries)
		q.On("CreateOrder", mock.Anything, mock.Anything, sqlc.CreateOrderParams{
			CustomerID: 5,
			Status:     "unpaid",
			CreatedAt:  pgconv.TimeToPgtype(now),
		}).Return(int64(77), nil)
		q.On("CopyOrderItems", mock.Anything, mock.Anything, mock.MatchedBy(func(rows []sqlc.CopyOrderItemsParams) bool {
			return len(rows) == 2 && rows[0].OrderID == 77 && rows[1].BookID == 2 && rows[0].Quantity == 2
		})).Return(int64(2), nil)

		id, err := NewOrderRepository(q).Create(context.Background(), nil, o)
		require.NoError(t, err)
		assert.Equal(t, int64(77), id)
		q.AssertExpectations(t)
	})

	t.Run("short copy is a failure", func(t *testing.T) {
		q := new(MockOrderWriteQueries)
		q.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return(int64(78), nil)
		q.On("CopyOrderItems", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)

		_, err := NewOrderRepository(q).Create(context.Background(), nil, o)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderRepository_FindForUpdate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		q := new(MockOrderWriteQueries)
		q.On("GetOrderForUpdate", mock.Anything, mock.Anything, int64(3)).Return(sqlc.Orders{}, pgx.ErrNoRows)

		_, err := NewOrderRepository(q).FindForUpdate(context.Background(), nil, 3)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown stored status", func(t *testing.T) {
		q := new(MockOrderWriteQueries)
		q.On("GetOrderForUpdate", mock.Anything, mock.Anything, int64(3)).Return(sqlc.Orders{ID: 3, Status: "shipped"}, nil)

		_, err := NewOrderRepository(q).FindForUpdate(context.Background(), nil, 3)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("found", func(t *testing.T) {
		q := new(MockOrderWriteQueries)
		q.On("GetOrderForUpdate", mock.Anything, mock.Anything, int64(3)).Return(sqlc.Orders{ID: 3, CustomerID: 4, Status: "paid"}, nil)

		o, err := NewOrderRepository(q).FindForUpdate(context.Background(), nil, 3)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, o.Status())
		assert.Equal(t, int64(4), o.CustomerID())
	})
}
