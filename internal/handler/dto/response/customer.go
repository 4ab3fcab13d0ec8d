package response

import (
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	BirthDate   *string   `json:"birth_date"`
}

type CustomerListResponse struct {
	Customers  []*CustomerResponse `json:"customers"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	res := &CustomerResponse{
		ID:          v.ID,
		UserID:      v.UserID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Email:       v.Email,
		PhoneNumber: v.PhoneNumber,
	}
	if v.BirthDate != nil {
		d := v.BirthDate.Format("2006-01-02")
		res.BirthDate = &d
	}
	return res
}

func FromCustomerList(items []*queries.CustomerView, next *queries.Cursor) *CustomerListResponse {
	res := &CustomerListResponse{Customers: make([]*CustomerResponse, len(items))}
	for i, it := range items {
		res.Customers[i] = FromCustomerView(it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
