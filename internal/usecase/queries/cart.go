package queries

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartReadStore interface {
	FindByID(ctx context.Context, cartID uuid.UUID) (*CartView, error)
	FindItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*CartItemView, error)
}

type CartQueries interface {
	GetCart(ctx context.Context, cartID uuid.UUID) (*CartView, error)
	ListItems(ctx context.Context, cartID uuid.UUID) ([]*CartItemView, error)
	GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*CartItemView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, cartID uuid.UUID) (*CartView, error) {
	v, err := q.store.FindByID(ctx, cartID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCartNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *cartQueriesImpl) ListItems(ctx context.Context, cartID uuid.UUID) ([]*CartItemView, error) {
	v, err := q.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return v.Items, nil
}

func (q *cartQueriesImpl) GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*CartItemView, error) {
	v, err := q.store.FindItem(ctx, cartID, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCartItemNotFound
		}
		return nil, err
	}
	return v, nil
}
