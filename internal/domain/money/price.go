package money

import (
	"bookstore-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// Scale is the number of fractional digits stored for every amount.
	Scale = 2
	// MaxDigits matches the NUMERIC(6,2) column.
	MaxDigits = 6
)

var (
	ErrNegativePrice  = errs.Validation("price must not be negative")
	ErrPriceScale     = errs.Validation("price must have at most 2 decimal places")
	ErrPriceTooLarge  = errs.Validation("price exceeds 6 digits")
	taxMultiplier     = decimal.RequireFromString("1.09")
	maxPriceExclusive = decimal.New(1, MaxDigits-Scale)
)

// Price is a non-negative amount with two decimal places.
type Price struct {
	amount decimal.Decimal
}

func NewPrice(d decimal.Decimal) (Price, error) {
	if d.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	if !d.Equal(d.Truncate(Scale)) {
		return Price{}, ErrPriceScale
	}
	if d.GreaterThanOrEqual(maxPriceExclusive) {
		return Price{}, ErrPriceTooLarge
	}
	return Price{amount: d.Round(Scale)}, nil
}

// MustPrice panics on invalid input; intended for constants and tests.
func MustPrice(s string) Price {
	p, err := NewPrice(decimal.RequireFromString(s))
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) Decimal() decimal.Decimal { return p.amount }

func (p Price) String() string { return p.amount.StringFixed(Scale) }

func (p Price) Equal(other Price) bool { return p.amount.Equal(other.amount) }

// Times returns the line amount for qty units.
func (p Price) Times(qty int) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(int64(qty)))
}

// AfterTax applies the flat 9% surcharge shown next to catalog prices.
func (p Price) AfterTax() decimal.Decimal {
	return AfterTax(p.amount)
}

func AfterTax(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(taxMultiplier).Round(Scale)
}

func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
