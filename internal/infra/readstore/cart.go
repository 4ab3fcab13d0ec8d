package readstore

import (
	"context"

	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/repository/converter"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartReadQueries interface {
	GetCart(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Carts, error)
	ListCartLines(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.ListCartLinesRow, error)
	GetCartLine(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartLineParams) (sqlc.GetCartLineRow, error)
}

type CartReadStore struct {
	queries CartReadQueries
	uow     shared.UnitOfWork
}

func NewCartReadStore(queries CartReadQueries, uow shared.UnitOfWork) *CartReadStore {
	return &CartReadStore{queries: queries, uow: uow}
}

// FindByID prices every line at the book's current price. Header and lines
// come from one snapshot, so a cart removed by checkout never reads as empty.
func (r *CartReadStore) FindByID(ctx context.Context, cartID uuid.UUID) (*queries.CartView, error) {
	var (
		header sqlc.Carts
		rows   []sqlc.ListCartLinesRow
	)
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		header, err = r.queries.GetCart(ctx, db, cartID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to get cart", err)
		}

		rows, err = r.queries.ListCartLines(ctx, db, cartID)
		if err != nil {
			return infra.WrapRepoErr("failed to list cart lines", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(rows))
	items := make([]*queries.CartItemView, 0, len(rows))
	for _, row := range rows {
		line, cerr := converter.CartLineFromRow(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("invalid stored book price", cerr, infra.KindDBFailure)
		}
		lines = append(lines, line)
		items = append(items, toCartItemView(line))
	}

	return &queries.CartView{
		ID:         header.ID,
		CreatedAt:  pgconv.TimeFromPgtype(header.CreatedAt),
		Items:      items,
		TotalPrice: cart.Total(lines),
	}, nil
}

func (r *CartReadStore) FindItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*queries.CartItemView, error) {
	var row sqlc.GetCartLineRow
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		row, err = r.queries.GetCartLine(ctx, db, sqlc.GetCartLineParams{ID: itemID, CartID: cartID})
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("cart item not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to get cart item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	line, err := converter.CartLineFromRow(sqlc.ListCartLinesRow(row))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored book price", err, infra.KindDBFailure)
	}
	return toCartItemView(line), nil
}

func toCartItemView(l cart.Line) *queries.CartItemView {
	return &queries.CartItemView{
		ID:         l.ItemID,
		BookID:     l.BookID,
		BookName:   l.BookName,
		BookSlug:   l.BookSlug,
		UnitPrice:  l.UnitPrice.Decimal(),
		Quantity:   l.Quantity,
		TotalPrice: l.Total(),
	}
}
