package repository

import (
	"context"
	"time"

	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/repository/converter"
	sqlc "bookstore-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	GetCustomerByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Customers, error)
	GetCustomer(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Customers, error)
	EnsureCustomer(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
	UpsertCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerParams) (int64, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
}

func NewCustomerRepository(queries CustomerWriteQueries) *CustomerRepository {
	return &CustomerRepository{queries: queries}
}

func (r *CustomerRepository) FindByUserID(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByUserID(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer by user", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, tx sqlc.DBTX, customerID int64) (*customer.Customer, error) {
	row, err := r.queries.GetCustomer(ctx, tx, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return converter.CustomerFromRow(row), nil
}

// Ensure creates an empty profile for the user if none exists yet.
func (r *CustomerRepository) Ensure(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.EnsureCustomer(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to ensure customer", err)
	}
	return nil
}

func (r *CustomerRepository) Save(ctx context.Context, tx sqlc.DBTX, c *customer.Customer, now time.Time) (int64, error) {
	id, err := r.queries.UpsertCustomer(ctx, tx, converter.CustomerToUpsertParams(c, now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to save customer", err)
	}
	return id, nil
}
