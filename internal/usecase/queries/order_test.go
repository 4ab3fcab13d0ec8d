//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/queries"
	queriesmock "bookstore-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	orders    *queriesmock.MockOrderReadStore
	customers *queriesmock.MockCustomerReadStore
	sut       queries.OrderQueries
	owner     access.Principal
	staff     access.Principal
}

func (s *OrderQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orders = queriesmock.NewMockOrderReadStore(s.ctrl)
	s.customers = queriesmock.NewMockCustomerReadStore(s.ctrl)
	s.sut = queries.NewOrderQueries(s.orders, s.customers)
	s.owner = access.NewPrincipal(uuid.New(), false, nil)
	s.staff = access.NewPrincipal(uuid.New(), true, nil)
}

func (s *OrderQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderQueriesSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}

func (s *OrderQueriesTestSuite) orderView(id int64, at time.Time) *queries.OrderView {
	return &queries.OrderView{ID: id, CustomerID: 3, CustomerUserID: s.owner.UserID, Status: "unpaid", CreatedAt: at}
}

func (s *OrderQueriesTestSuite) TestGetOrder() {
	ctx := context.Background()
	view := s.orderView(7, time.Now())

	s.Run("owner can read", func() {
		s.orders.EXPECT().FindByID(gomock.Any(), int64(7)).Return(view, nil)
		v, err := s.sut.GetOrder(ctx, s.owner, 7)
		s.Require().NoError(err)
		s.Equal(int64(7), v.ID)
	})

	s.Run("staff can read", func() {
		s.orders.EXPECT().FindByID(gomock.Any(), int64(7)).Return(view, nil)
		_, err := s.sut.GetOrder(ctx, s.staff, 7)
		s.NoError(err)
	})

	s.Run("another customer is forbidden", func() {
		s.orders.EXPECT().FindByID(gomock.Any(), int64(7)).Return(view, nil)
		_, err := s.sut.GetOrder(ctx, access.NewPrincipal(uuid.New(), false, nil), 7)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("anonymous", func() {
		_, err := s.sut.GetOrder(ctx, access.Anonymous(), 7)
		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})

	s.Run("not found", func() {
		s.orders.EXPECT().FindByID(gomock.Any(), int64(8)).Return(nil, infra.WrapRepoErr("order", nil, infra.KindNotFound))
		_, err := s.sut.GetOrder(ctx, s.owner, 8)
		s.True(errs.Is(err, errs.ErrOrderNotFound))
	})
}

func (s *OrderQueriesTestSuite) TestListOrders() {
	ctx := context.Background()
	t0 := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

	s.Run("customers only see their own orders", func() {
		s.customers.EXPECT().FindByUserID(gomock.Any(), s.owner.UserID).Return(&queries.CustomerView{ID: 3}, nil)
		s.orders.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.OrderListFilter) ([]*queries.OrderView, error) {
				s.Require().NotNil(f.CustomerID)
				s.Equal(int64(3), *f.CustomerID)
				s.Nil(f.Status)
				s.Equal(int32(2), f.Limit)
				return []*queries.OrderView{s.orderView(9, t0), s.orderView(8, t0.Add(-time.Minute))}, nil
			})

		rows, next, err := s.sut.ListOrders(ctx, s.owner, nil, 1)
		s.Require().NoError(err)
		s.Len(rows, 1)
		s.Require().NotNil(next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.True(at.Equal(t0))
		s.Equal(int64(9), id)
	})

	s.Run("customers without a profile get an empty list", func() {
		s.customers.EXPECT().FindByUserID(gomock.Any(), s.owner.UserID).Return(nil, infra.WrapRepoErr("customer", nil, infra.KindNotFound))

		rows, next, err := s.sut.ListOrders(ctx, s.owner, nil, 0)
		s.Require().NoError(err)
		s.Empty(rows)
		s.Nil(next)
	})

	s.Run("staff see everything", func() {
		s.orders.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.OrderListFilter) ([]*queries.OrderView, error) {
				s.Nil(f.CustomerID)
				return nil, nil
			})

		_, _, err := s.sut.ListOrders(ctx, s.staff, nil, 0)
		s.NoError(err)
	})

	s.Run("cursor continues after the last row", func() {
		s.orders.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.OrderListFilter) ([]*queries.OrderView, error) {
				s.Require().NotNil(f.AfterCreatedAt)
				s.True(f.AfterCreatedAt.Equal(t0))
				s.Equal(int64(9), f.AfterID)
				return nil, nil
			})

		_, _, err := s.sut.ListOrders(ctx, s.staff, &queries.Cursor{After: queries.EncodeAfterCursor(t0, 9)}, 0)
		s.NoError(err)
	})
}

func (s *OrderQueriesTestSuite) TestListUnpaidOrders() {
	ctx := context.Background()

	s.Run("staff get the unpaid queue", func() {
		s.orders.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.OrderListFilter) ([]*queries.OrderView, error) {
				s.Require().NotNil(f.Status)
				s.Equal("unpaid", *f.Status)
				return nil, nil
			})

		_, _, err := s.sut.ListUnpaidOrders(ctx, s.staff, nil, 0)
		s.NoError(err)
	})

	s.Run("customers are forbidden", func() {
		_, _, err := s.sut.ListUnpaidOrders(ctx, s.owner, nil, 0)
		s.True(errs.Is(err, errs.ErrForbidden))
	})
}
