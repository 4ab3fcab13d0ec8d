package commands

import (
	"context"

	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	CreateCart(ctx context.Context) (uuid.UUID, error)
	// AddItem merges quantity into the cart's line for the book and returns the line id.
	AddItem(ctx context.Context, cartID uuid.UUID, bookID int64, quantity int) (int64, error)
	UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, cartID uuid.UUID, itemID int64) error
	DeleteCart(ctx context.Context, cartID uuid.UUID) error
}

type cartCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{uow: uow, clock: clk}
}

func (uc *cartCommandsImpl) CreateCart(ctx context.Context) (uuid.UUID, error) {
	c, err := cart.NewCart(uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Carts().Create(ctx, tx.DB(), c), errs.ErrCartNotFound)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *cartCommandsImpl) AddItem(ctx context.Context, cartID uuid.UUID, bookID int64, quantity int) (int64, error) {
	add, err := cart.NewAddition(bookID, quantity)
	if err != nil {
		return 0, err
	}

	var itemID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Carts().LockShared(ctx, tx.DB(), cartID); derr != nil {
			return mapRepoErr(derr, errs.ErrCartNotFound)
		}

		exists, derr := tx.Books().Exists(ctx, tx.DB(), bookID)
		if derr != nil {
			return mapRepoErr(derr, errs.ErrBookNotFound)
		}
		if !exists {
			return errs.ErrBookNotFound
		}

		id, _, derr := tx.Carts().AddItem(ctx, tx.DB(), cartID, add)
		if derr != nil {
			if infra.IsKind(derr, infra.KindCheckViolated) {
				return cart.ErrQuantityTooLarge
			}
			return mapRepoErr(derr, errs.ErrCartNotFound)
		}
		itemID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return itemID, nil
}

func (uc *cartCommandsImpl) UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID int64, quantity int) error {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Carts().LockShared(ctx, tx.DB(), cartID); err != nil {
			return mapRepoErr(err, errs.ErrCartNotFound)
		}
		return mapRepoErr(tx.Carts().SetItemQuantity(ctx, tx.DB(), cartID, itemID, quantity), errs.ErrCartItemNotFound)
	})
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, cartID uuid.UUID, itemID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Carts().LockShared(ctx, tx.DB(), cartID); err != nil {
			return mapRepoErr(err, errs.ErrCartNotFound)
		}
		return mapRepoErr(tx.Carts().RemoveItem(ctx, tx.DB(), cartID, itemID), errs.ErrCartItemNotFound)
	})
}

func (uc *cartCommandsImpl) DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Carts().Delete(ctx, tx.DB(), cartID), errs.ErrCartNotFound)
	})
}
