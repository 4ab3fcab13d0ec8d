package readstore

import (
	"context"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	GetCustomerByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Customers, error)
	GetCustomer(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Customers, error)
	ListCustomers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomersParams) ([]sqlc.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{queries: queries, db: db}
}

func (r *CustomerReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer by user", err)
	}
	return toCustomerView(row), nil
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id int64) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomer(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer", err)
	}
	return toCustomerView(row), nil
}

func (r *CustomerReadStore) List(ctx context.Context, afterID int64, limit int32) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db, sqlc.ListCustomersParams{AfterID: afterID, RowLimit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	views := make([]*queries.CustomerView, len(rows))
	for i, row := range rows {
		views[i] = toCustomerView(row)
	}
	return views, nil
}

func toCustomerView(row sqlc.Customers) *queries.CustomerView {
	return &queries.CustomerView{
		ID:          row.ID,
		UserID:      row.UserID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		PhoneNumber: row.PhoneNumber,
		BirthDate:   pgconv.DatePtrFromPgtype(row.BirthDate),
	}
}
