package cart

import (
	"time"

	"bookstore-api/internal/domain/money"
	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxQuantity matches the cart_items quantity check.
const MaxQuantity = 32767

var (
	ErrNonPositiveQuantity = errs.Validation("quantity must be greater than zero")
	ErrNegativeQuantity    = errs.Validation("quantity must not be negative")
	ErrQuantityTooLarge    = errs.Validation("quantity exceeds the maximum allowed")
	ErrInvalidBook         = errs.Validation("book id is required")
)

// Cart is an anonymous basket addressed only by its random token.
type Cart struct {
	id        uuid.UUID
	createdAt time.Time
}

// NewCart draws a random version 4 token.
func NewCart(now time.Time) (*Cart, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate cart token")
	}
	return &Cart{id: id, createdAt: now}, nil
}

func ReconstructCart(id uuid.UUID, createdAt time.Time) *Cart {
	return &Cart{id: id, createdAt: createdAt}
}

func (c *Cart) ID() uuid.UUID        { return c.id }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }

// Addition is a request to merge quantity units of a book into a cart.
type Addition struct {
	BookID   int64
	Quantity int
}

func NewAddition(bookID int64, quantity int) (Addition, error) {
	if bookID <= 0 {
		return Addition{}, ErrInvalidBook
	}
	if quantity <= 0 {
		return Addition{}, ErrNonPositiveQuantity
	}
	if quantity > MaxQuantity {
		return Addition{}, ErrQuantityTooLarge
	}
	return Addition{BookID: bookID, Quantity: quantity}, nil
}

// ValidateQuantity checks an overwrite value; zero keeps the line with no units.
func ValidateQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}
	return nil
}

// Line is a cart item joined with the book's current price.
type Line struct {
	ItemID    int64
	BookID    int64
	BookName  string
	BookSlug  string
	Quantity  int
	UnitPrice money.Price
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Times(l.Quantity)
}

// Total is the sum of the line totals.
func Total(lines []Line) decimal.Decimal {
	amounts := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		amounts[i] = l.Total()
	}
	return money.Sum(amounts...)
}
