//go:build unit || e2e

package builder

import (
	"time"

	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID          int64
	UserID      uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	BirthDate   *time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	birth := time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)
	return &CustomerBuilder{
		ID:          3,
		UserID:      uuid.New(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+44 20 7946 0000",
		BirthDate:   &birth,
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:          b.ID,
		UserID:      b.UserID,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		BirthDate:   b.BirthDate,
	}
}

func (b *CustomerBuilder) BuildUpdateRequestDTO() reqdto.UpdateProfileRequest {
	req := reqdto.UpdateProfileRequest{
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
	}
	if b.BirthDate != nil {
		s := b.BirthDate.Format("2006-01-02")
		req.BirthDate = &s
	}
	return req
}
