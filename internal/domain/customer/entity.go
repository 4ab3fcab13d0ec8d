package customer

import (
	"net/mail"
	"strings"
	"time"

	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxPhoneLength = 50
	MaxNameLength  = 150
)

var (
	ErrMissingUser       = errs.Validation("customer must belong to a user")
	ErrPhoneTooLong      = errs.Validation("phone number exceeds 50 characters")
	ErrNameTooLong       = errs.Validation("name exceeds 150 characters")
	ErrInvalidEmail      = errs.Validation("invalid email address")
	ErrBirthDateInFuture = errs.Validation("birth date cannot be in the future")
)

// Customer is the shop profile of an authenticated user, one per user.
type Customer struct {
	id          int64
	userID      uuid.UUID
	firstName   string
	lastName    string
	email       string
	phoneNumber string
	birthDate   *time.Time
}

type Profile struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	BirthDate   *time.Time
}

func NewCustomer(userID uuid.UUID, p Profile, today time.Time) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	c := &Customer{userID: userID}
	if err := c.apply(p, today); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCustomer(id int64, userID uuid.UUID, p Profile) *Customer {
	return &Customer{
		id:          id,
		userID:      userID,
		firstName:   p.FirstName,
		lastName:    p.LastName,
		email:       p.Email,
		phoneNumber: p.PhoneNumber,
		birthDate:   p.BirthDate,
	}
}

func (c *Customer) apply(p Profile, today time.Time) error {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)

	if len([]rune(p.PhoneNumber)) > MaxPhoneLength {
		return ErrPhoneTooLong
	}
	if len([]rune(p.FirstName)) > MaxNameLength || len([]rune(p.LastName)) > MaxNameLength {
		return ErrNameTooLong
	}
	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return ErrInvalidEmail
		}
	}
	if p.BirthDate != nil && p.BirthDate.After(today) {
		return ErrBirthDateInFuture
	}

	c.firstName = p.FirstName
	c.lastName = p.LastName
	c.email = p.Email
	c.phoneNumber = p.PhoneNumber
	c.birthDate = p.BirthDate
	return nil
}

func (c *Customer) ID() int64             { return c.id }
func (c *Customer) UserID() uuid.UUID     { return c.userID }
func (c *Customer) FirstName() string     { return c.firstName }
func (c *Customer) LastName() string      { return c.lastName }
func (c *Customer) Email() string         { return c.email }
func (c *Customer) PhoneNumber() string   { return c.phoneNumber }
func (c *Customer) BirthDate() *time.Time { return c.birthDate }

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}
