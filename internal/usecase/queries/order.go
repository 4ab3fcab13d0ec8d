package queries

import (
	"context"
	"time"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/domain/order"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
)

type OrderListFilter struct {
	CustomerID     *int64
	Status         *string
	AfterCreatedAt *time.Time
	AfterID        int64
	Limit          int32
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id int64) (*OrderView, error)
	List(ctx context.Context, filter OrderListFilter) ([]*OrderView, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, p access.Principal, id int64) (*OrderView, error)
	ListOrders(ctx context.Context, p access.Principal, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
	// ListUnpaidOrders is the staff work queue of orders awaiting payment.
	ListUnpaidOrders(ctx context.Context, p access.Principal, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
}

type orderQueriesImpl struct {
	orders    OrderReadStore
	customers CustomerReadStore
}

func NewOrderQueries(orders OrderReadStore, customers CustomerReadStore) OrderQueries {
	return &orderQueriesImpl{orders: orders, customers: customers}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, p access.Principal, id int64) (*OrderView, error) {
	if !p.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	v, err := q.orders.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	if !p.CanViewOrder(v.CustomerUserID) {
		return nil, errs.ErrForbidden
	}
	return v, nil
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, p access.Principal, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	if !p.IsAuthenticated() {
		return nil, nil, errs.ErrUnauthenticated
	}

	var filter OrderListFilter
	if !p.CanViewAllOrders() {
		c, err := q.customers.FindByUserID(ctx, p.UserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// no profile means no orders
				return []*OrderView{}, nil, nil
			}
			return nil, nil, err
		}
		filter.CustomerID = &c.ID
	}
	return q.list(ctx, filter, cursor, limit)
}

func (q *orderQueriesImpl) ListUnpaidOrders(ctx context.Context, p access.Principal, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	if !p.IsAuthenticated() {
		return nil, nil, errs.ErrUnauthenticated
	}
	if !p.CanViewAllOrders() {
		return nil, nil, errs.ErrForbidden
	}
	unpaid := order.StatusUnpaid.String()
	return q.list(ctx, OrderListFilter{Status: &unpaid}, cursor, limit)
}

func (q *orderQueriesImpl) list(ctx context.Context, filter OrderListFilter, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	limit = ValidateLimit(limit)
	if cursor != nil && cursor.After != "" {
		createdAt, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.ErrInvalidCursor
		}
		filter.AfterCreatedAt = &createdAt
		filter.AfterID = id
	}
	filter.Limit = int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	rows, err := q.orders.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(last *OrderView) string {
		return EncodeAfterCursor(last.CreatedAt, last.ID)
	})
	return rows, next, nil
}
