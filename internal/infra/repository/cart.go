package repository

import (
	"context"

	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/repository/converter"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	CreateCart(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCartParams) error
	LockCartShared(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	LockCartForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) (sqlc.UpsertCartItemRow, error)
	UpdateCartItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartItemQuantityParams) (int64, error)
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error)
	ListCartLines(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.ListCartLinesRow, error)
	DeleteCart(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
}

func NewCartRepository(queries CartWriteQueries) *CartRepository {
	return &CartRepository{queries: queries}
}

func (r *CartRepository) Create(ctx context.Context, tx sqlc.DBTX, c *cart.Cart) error {
	err := r.queries.CreateCart(ctx, tx, sqlc.CreateCartParams{
		ID:        c.ID(),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create cart", err)
	}
	return nil
}

func (r *CartRepository) LockShared(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error {
	if _, err := r.queries.LockCartShared(ctx, tx, cartID); err != nil {
		return infra.WrapRepoErr("failed to lock cart", err)
	}
	return nil
}

func (r *CartRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error {
	if _, err := r.queries.LockCartForUpdate(ctx, tx, cartID); err != nil {
		return infra.WrapRepoErr("failed to lock cart for update", err)
	}
	return nil
}

// AddItem merges into an existing line for the same book and returns the resulting quantity.
func (r *CartRepository) AddItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, add cart.Addition) (int64, int, error) {
	row, err := r.queries.UpsertCartItem(ctx, tx, sqlc.UpsertCartItemParams{
		CartID:   cartID,
		BookID:   add.BookID,
		Quantity: pgconv.IntToInt32(add.Quantity),
	})
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to add cart item", err)
	}
	return row.ID, int(row.Quantity), nil
}

func (r *CartRepository) SetItemQuantity(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, itemID int64, quantity int) error {
	n, err := r.queries.UpdateCartItemQuantity(ctx, tx, sqlc.UpdateCartItemQuantityParams{
		ID:       itemID,
		CartID:   cartID,
		Quantity: pgconv.IntToInt32(quantity),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update cart item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, itemID int64) error {
	n, err := r.queries.DeleteCartItem(ctx, tx, sqlc.DeleteCartItemParams{ID: itemID, CartID: cartID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) Lines(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) ([]cart.Line, error) {
	rows, err := r.queries.ListCartLines(ctx, tx, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	lines := make([]cart.Line, 0, len(rows))
	for _, row := range rows {
		l, cerr := converter.CartLineFromRow(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to convert cart line", cerr, infra.KindDBFailure)
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func (r *CartRepository) Delete(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error {
	n, err := r.queries.DeleteCart(ctx, tx, cartID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
	}
	return nil
}
