package commands

import (
	"context"
	"log/slog"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/domain/order"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

func (uc *orderCommandsImpl) Checkout(ctx context.Context, p access.Principal, cartID uuid.UUID) (int64, error) {
	if !p.IsAuthenticated() {
		return 0, errs.ErrUnauthenticated
	}

	var orderID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// exclusive lock: item writers wait, a concurrent checkout finds the cart gone
		if err := tx.Carts().LockForUpdate(ctx, tx.DB(), cartID); err != nil {
			return mapRepoErr(err, errs.ErrCartNotFound)
		}

		lines, err := tx.Carts().Lines(ctx, tx.DB(), cartID)
		if err != nil {
			return mapRepoErr(err, errs.ErrCartNotFound)
		}
		if len(lines) == 0 {
			return errs.ErrEmptyCart
		}

		cust, err := tx.Customers().FindByUserID(ctx, tx.DB(), p.UserID)
		if err != nil {
			return mapRepoErr(err, errs.ErrCustomerProfileMissing)
		}

		now := uc.clock.Now()
		o, err := order.NewFromCart(cust.ID(), lines, now)
		if err != nil {
			return err
		}

		id, err := tx.Orders().Create(ctx, tx.DB(), o)
		if err != nil {
			return mapRepoErr(err, errs.ErrOrderNotFound)
		}

		ev, err := shared.NewOutboxEvent(shared.AggregateOrder, id, shared.EventOrderCreated, orderCreatedPayload(id, o), now)
		if err != nil {
			return err
		}
		if err := tx.Outbox().Append(ctx, tx.DB(), ev); err != nil {
			return mapRepoErr(err, errs.ErrOrderNotFound)
		}

		if err := tx.Carts().Delete(ctx, tx.DB(), cartID); err != nil {
			return mapRepoErr(err, errs.ErrCartNotFound)
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("order created", "order_id", orderID, "user_id", p.UserID.String())
	return orderID, nil
}

func orderCreatedPayload(id int64, o *order.Order) shared.OrderCreatedPayload {
	items := make([]shared.OrderCreatedItem, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = shared.OrderCreatedItem{
			BookID:    it.BookID(),
			Quantity:  it.Quantity(),
			UnitPrice: it.UnitPrice().String(),
		}
	}
	return shared.OrderCreatedPayload{
		OrderID:    id,
		CustomerID: o.CustomerID(),
		Total:      o.Total().StringFixed(2),
		Items:      items,
		CreatedAt:  o.CreatedAt(),
	}
}
