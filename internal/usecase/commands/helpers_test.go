//go:build unit

package commands_test

import (
	"context"
	"time"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/usecase/shared"
	sharedmock "bookstore-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

// txHarness runs Within callbacks against mocked repositories.
type txHarness struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	carts      *sharedmock.MockCartRepository
	orders     *sharedmock.MockOrderRepository
	customers  *sharedmock.MockCustomerRepository
	books      *sharedmock.MockBookRepository
	categories *sharedmock.MockCategoryRepository
	comments   *sharedmock.MockCommentRepository
	outbox     *sharedmock.MockOutboxRepository
	clock      *clock.MockClock
}

func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		carts:      sharedmock.NewMockCartRepository(ctrl),
		orders:     sharedmock.NewMockOrderRepository(ctrl),
		customers:  sharedmock.NewMockCustomerRepository(ctrl),
		books:      sharedmock.NewMockBookRepository(ctrl),
		categories: sharedmock.NewMockCategoryRepository(ctrl),
		comments:   sharedmock.NewMockCommentRepository(ctrl),
		outbox:     sharedmock.NewMockOutboxRepository(ctrl),
		clock:      clock.NewMockClock(fixedNow),
	}
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Carts().Return(h.carts).AnyTimes()
	h.tx.EXPECT().Orders().Return(h.orders).AnyTimes()
	h.tx.EXPECT().Customers().Return(h.customers).AnyTimes()
	h.tx.EXPECT().Books().Return(h.books).AnyTimes()
	h.tx.EXPECT().Categories().Return(h.categories).AnyTimes()
	h.tx.EXPECT().Comments().Return(h.comments).AnyTimes()
	h.tx.EXPECT().Outbox().Return(h.outbox).AnyTimes()
	return h
}

func repoNotFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}
