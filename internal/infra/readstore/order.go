package readstore

import (
	"context"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderReadQueries interface {
	GetOrderView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetOrderViewRow, error)
	ListOrderViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrderViewsParams) ([]sqlc.ListOrderViewsRow, error)
	ListOrderItemViews(ctx context.Context, db sqlc.DBTX, orderIds []int64) ([]sqlc.ListOrderItemViewsRow, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{queries: queries, db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view", err)
	}
	views := []*queries.OrderView{toOrderView(sqlc.ListOrderViewsRow(row))}
	if err := r.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *OrderReadStore) List(ctx context.Context, filter queries.OrderListFilter) ([]*queries.OrderView, error) {
	params := sqlc.ListOrderViewsParams{
		CustomerID:     pgconv.Int64PtrToPgtype(filter.CustomerID),
		Status:         pgconv.StringPtrToPgtype(filter.Status),
		AfterCreatedAt: pgconv.TimePtrToPgtype(filter.AfterCreatedAt),
		AfterID:        filter.AfterID,
		RowLimit:       filter.Limit,
	}
	rows, err := r.queries.ListOrderViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	views := make([]*queries.OrderView, len(rows))
	for i, row := range rows {
		views[i] = toOrderView(row)
	}
	if err := r.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// attachItems loads the lines of all orders in one query.
func (r *OrderReadStore) attachItems(ctx context.Context, views []*queries.OrderView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]int64, len(views))
	byID := make(map[int64]*queries.OrderView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.queries.ListOrderItemViews(ctx, r.db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list order items", err)
	}
	for _, row := range rows {
		v, ok := byID[row.OrderID]
		if !ok {
			continue
		}
		item, cerr := toOrderItemView(row.ID, row.BookID, row.BookName, row.BookSlug, row.Quantity, row.UnitPrice)
		if cerr != nil {
			return cerr
		}
		v.Items = append(v.Items, item)
		v.TotalPrice = v.TotalPrice.Add(item.TotalPrice)
	}
	return nil
}

func toOrderView(row sqlc.ListOrderViewsRow) *queries.OrderView {
	return &queries.OrderView{
		ID:             row.ID,
		CustomerID:     row.CustomerID,
		CustomerUserID: row.UserID,
		CustomerFirst:  row.FirstName,
		CustomerLast:   row.LastName,
		CustomerEmail:  row.Email,
		Status:         row.Status,
		Items:          []*queries.OrderItemView{},
		TotalPrice:     decimal.Zero,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toOrderItemView(id, bookID int64, name, slug string, quantity int32, unitPrice pgtype.Numeric) (*queries.OrderItemView, error) {
	price, err := pgconv.DecimalFromNumeric(unitPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored order price", err, infra.KindDBFailure)
	}
	return &queries.OrderItemView{
		ID:         id,
		BookID:     bookID,
		BookName:   name,
		BookSlug:   slug,
		Quantity:   int(quantity),
		UnitPrice:  price,
		TotalPrice: price.Mul(decimal.NewFromInt32(quantity)),
	}, nil
}
