package converter

import (
	"time"

	"bookstore-api/internal/domain/customer"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
)

func CustomerFromRow(row sqlc.Customers) *customer.Customer {
	return customer.ReconstructCustomer(row.ID, row.UserID, customer.Profile{
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		PhoneNumber: row.PhoneNumber,
		BirthDate:   pgconv.DatePtrFromPgtype(row.BirthDate),
	})
}

func CustomerToUpsertParams(c *customer.Customer, now time.Time) sqlc.UpsertCustomerParams {
	return sqlc.UpsertCustomerParams{
		UserID:      c.UserID(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		Email:       c.Email(),
		PhoneNumber: c.PhoneNumber(),
		BirthDate:   pgconv.DatePtrToPgtype(c.BirthDate()),
		UpdatedAt:   pgconv.TimeToPgtype(now),
	}
}
