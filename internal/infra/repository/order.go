package repository

import (
	"context"

	"bookstore-api/internal/domain/order"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/repository/converter"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (int64, error)
	CopyOrderItems(ctx context.Context, db sqlc.DBTX, arg []sqlc.CopyOrderItemsParams) (int64, error)
	GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Orders, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

// Create inserts the header and bulk-copies the items.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error) {
	id, err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create order", err)
	}

	params := converter.OrderItemsToCopyParams(id, o.Items())
	copied, err := r.queries.CopyOrderItems(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to copy order items", err)
	}
	if copied != int64(len(params)) {
		return 0, infra.WrapRepoErr("order items partially copied", nil, infra.KindDBFailure)
	}
	return id, nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, orderID int64) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order", err)
	}
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert order", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	n, err := r.queries.UpdateOrderStatus(ctx, tx, sqlc.UpdateOrderStatusParams{
		ID:        o.ID(),
		Status:    o.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(o.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
