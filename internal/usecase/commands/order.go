package commands

import (
	"context"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/domain/order"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderCommands interface {
	// Checkout turns the cart into an unpaid order for the caller and deletes the cart.
	Checkout(ctx context.Context, p access.Principal, cartID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, p access.Principal, orderID int64, status string) error
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk}
}

func (uc *orderCommandsImpl) UpdateStatus(ctx context.Context, p access.Principal, orderID int64, status string) error {
	if !p.CanUpdateOrderStatus() {
		return errs.ErrForbidden
	}
	next, err := order.ParseStatus(status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return mapRepoErr(err, errs.ErrOrderNotFound)
		}

		prev := o.Status()
		now := uc.clock.Now()
		changed, err := o.ChangeStatus(next, now)
		if err != nil || !changed {
			return err
		}

		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), o); err != nil {
			return mapRepoErr(err, errs.ErrOrderNotFound)
		}

		ev, err := shared.NewOutboxEvent(shared.AggregateOrder, o.ID(), shared.EventOrderStatusChanged, shared.OrderStatusChangedPayload{
			OrderID:   o.ID(),
			From:      prev.String(),
			To:        next.String(),
			ChangedAt: now,
		}, now)
		if err != nil {
			return err
		}
		return mapRepoErr(tx.Outbox().Append(ctx, tx.DB(), ev), errs.ErrOrderNotFound)
	})
}
