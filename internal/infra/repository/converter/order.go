package converter

import (
	"bookstore-api/internal/domain/order"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		CustomerID: o.CustomerID(),
		Status:     o.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderItemsToCopyParams(orderID int64, items []order.Item) []sqlc.CopyOrderItemsParams {
	params := make([]sqlc.CopyOrderItemsParams, len(items))
	for i, it := range items {
		params[i] = sqlc.CopyOrderItemsParams{
			OrderID:   orderID,
			BookID:    it.BookID(),
			Quantity:  pgconv.IntToInt32(it.Quantity()),
			UnitPrice: pgconv.DecimalToNumeric(it.UnitPrice().Decimal()),
		}
	}
	return params
}

// OrderFromRow rebuilds the header only; status changes never need the items.
func OrderFromRow(row sqlc.Orders) (*order.Order, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return order.Reconstruct(
		row.ID,
		row.CustomerID,
		status,
		nil,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
