//go:build unit || e2e

package builder

import (
	"time"

	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID             int64
	CustomerID     int64
	CustomerUserID uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Status         string
	Lines          []CartLine
	CreatedAt      time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:             7,
		CustomerID:     3,
		CustomerUserID: uuid.New(),
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		Status:         "unpaid",
		CreatedAt:      time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithLine(l CartLine) *OrderBuilder {
	b.Lines = append(b.Lines, l)
	return b
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	v := &queries.OrderView{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		CustomerUserID: b.CustomerUserID,
		CustomerFirst:  b.FirstName,
		CustomerLast:   b.LastName,
		CustomerEmail:  b.Email,
		Status:         b.Status,
		Items:          []*queries.OrderItemView{},
		TotalPrice:     decimal.Zero,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
	for _, l := range b.Lines {
		price := decimal.RequireFromString(l.UnitPrice)
		total := price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		v.Items = append(v.Items, &queries.OrderItemView{
			ID:         l.ItemID,
			BookID:     l.BookID,
			BookName:   l.BookName,
			BookSlug:   slug.Make(l.BookName),
			Quantity:   l.Quantity,
			UnitPrice:  price,
			TotalPrice: total,
		})
		v.TotalPrice = v.TotalPrice.Add(total)
	}
	return v
}
