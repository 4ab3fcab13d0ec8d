package queries

import (
	"context"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CustomerReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*CustomerView, error)
	FindByID(ctx context.Context, id int64) (*CustomerView, error)
	List(ctx context.Context, afterID int64, limit int32) ([]*CustomerView, error)
}

type CustomerQueries interface {
	GetMe(ctx context.Context, p access.Principal) (*CustomerView, error)
	GetCustomer(ctx context.Context, p access.Principal, id int64) (*CustomerView, error)
	ListCustomers(ctx context.Context, p access.Principal, cursor *Cursor, limit int) ([]*CustomerView, *Cursor, error)
}

type customerQueriesImpl struct {
	store CustomerReadStore
}

func NewCustomerQueries(store CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{store: store}
}

func (q *customerQueriesImpl) GetMe(ctx context.Context, p access.Principal) (*CustomerView, error) {
	if !p.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	v, err := q.store.FindByUserID(ctx, p.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *customerQueriesImpl) GetCustomer(ctx context.Context, p access.Principal, id int64) (*CustomerView, error) {
	if !p.CanListCustomers() {
		return nil, errs.ErrForbidden
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *customerQueriesImpl) ListCustomers(ctx context.Context, p access.Principal, cursor *Cursor, limit int) ([]*CustomerView, *Cursor, error) {
	if !p.CanListCustomers() {
		return nil, nil, errs.ErrForbidden
	}
	limit = ValidateLimit(limit)
	var afterID int64
	if cursor != nil && cursor.After != "" {
		id, err := DecodeIDCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.ErrInvalidCursor
		}
		afterID = id
	}
	rows, err := q.store.List(ctx, afterID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(last *CustomerView) string { return EncodeIDCursor(last.ID) })
	return rows, next, nil
}
