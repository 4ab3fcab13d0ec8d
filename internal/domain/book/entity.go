package book

import (
	"strings"
	"time"
	"unicode/utf8"

	"bookstore-api/internal/domain/money"
	"bookstore-api/internal/pkg/errs"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

const (
	MinNameLength = 6
	MaxNameLength = 250
)

var (
	ErrNameTooShort      = errs.Validation("book name must be at least 6 characters")
	ErrNameTooLong       = errs.Validation("book name exceeds 250 characters")
	ErrNegativeInventory = errs.Validation("inventory must not be negative")
	ErrInvalidCategory   = errs.Validation("book category is required")
)

type Book struct {
	id          int64
	name        string
	description string
	categoryID  int64
	slug        string
	inventory   int
	unitPrice   money.Price
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBook validates input and derives the slug from the name.
func NewBook(name, description string, categoryID int64, inventory int, unitPrice decimal.Decimal, now time.Time) (*Book, error) {
	name = strings.TrimSpace(name)
	switch n := utf8.RuneCountInString(name); {
	case n < MinNameLength:
		return nil, ErrNameTooShort
	case n > MaxNameLength:
		return nil, ErrNameTooLong
	}
	if categoryID <= 0 {
		return nil, ErrInvalidCategory
	}
	if inventory < 0 {
		return nil, ErrNegativeInventory
	}
	price, err := money.NewPrice(unitPrice)
	if err != nil {
		return nil, err
	}

	return &Book{
		name:        name,
		description: description,
		categoryID:  categoryID,
		slug:        slug.Make(name),
		inventory:   inventory,
		unitPrice:   price,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBook(id int64, name, description string, categoryID int64, slugValue string, inventory int, unitPrice money.Price, createdAt, updatedAt time.Time) *Book {
	return &Book{
		id:          id,
		name:        name,
		description: description,
		categoryID:  categoryID,
		slug:        slugValue,
		inventory:   inventory,
		unitPrice:   unitPrice,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Book) ID() int64              { return b.id }
func (b *Book) Name() string           { return b.name }
func (b *Book) Description() string    { return b.description }
func (b *Book) CategoryID() int64      { return b.categoryID }
func (b *Book) Slug() string           { return b.slug }
func (b *Book) Inventory() int         { return b.inventory }
func (b *Book) UnitPrice() money.Price { return b.unitPrice }
func (b *Book) CreatedAt() time.Time   { return b.createdAt }
func (b *Book) UpdatedAt() time.Time   { return b.updatedAt }

// Revise validates the new field values and returns the updated book with
// its identity and creation time kept. The slug follows the new name.
func (b *Book) Revise(name, description string, categoryID int64, inventory int, unitPrice decimal.Decimal, now time.Time) (*Book, error) {
	next, err := NewBook(name, description, categoryID, inventory, unitPrice, now)
	if err != nil {
		return nil, err
	}
	next.id = b.id
	next.createdAt = b.createdAt
	return next, nil
}
