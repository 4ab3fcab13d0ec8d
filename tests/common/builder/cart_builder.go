//go:build unit || e2e

package builder

import (
	"time"

	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

type CartLine struct {
	ItemID    int64
	BookID    int64
	BookName  string
	UnitPrice string
	Quantity  int
}

type CartBuilder struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Lines     []CartLine
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		ID:        uuid.New(),
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *CartBuilder) WithLine(l CartLine) *CartBuilder {
	b.Lines = append(b.Lines, l)
	return b
}

func (l CartLine) BuildItemView() *queries.CartItemView {
	price := decimal.RequireFromString(l.UnitPrice)
	return &queries.CartItemView{
		ID:         l.ItemID,
		BookID:     l.BookID,
		BookName:   l.BookName,
		BookSlug:   slug.Make(l.BookName),
		UnitPrice:  price,
		Quantity:   l.Quantity,
		TotalPrice: price.Mul(decimal.NewFromInt(int64(l.Quantity))),
	}
}

func (b *CartBuilder) BuildView() *queries.CartView {
	v := &queries.CartView{ID: b.ID, CreatedAt: b.CreatedAt, Items: []*queries.CartItemView{}, TotalPrice: decimal.Zero}
	for _, l := range b.Lines {
		item := l.BuildItemView()
		v.Items = append(v.Items, item)
		v.TotalPrice = v.TotalPrice.Add(item.TotalPrice)
	}
	return v
}
