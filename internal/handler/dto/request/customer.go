package request

import (
	"time"

	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

type UpdateProfileRequest struct {
	FirstName   string  `json:"first_name" binding:"max=150"`
	LastName    string  `json:"last_name" binding:"max=150"`
	Email       string  `json:"email" binding:"omitempty,email"`
	PhoneNumber string  `json:"phone_number" binding:"max=50"`
	BirthDate   *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateProfileRequest) ToProfile() (customer.Profile, error) {
	p := customer.Profile{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
	if r.BirthDate != nil {
		d, err := time.Parse(dateLayout, *r.BirthDate)
		if err != nil {
			return customer.Profile{}, err
		}
		p.BirthDate = &d
	}
	return p, nil
}

type SendPrivateEmailRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required"`
}

func (r *SendPrivateEmailRequest) ToInput() commands.PrivateEmailInput {
	return commands.PrivateEmailInput{Subject: r.Subject, Body: r.Body}
}
