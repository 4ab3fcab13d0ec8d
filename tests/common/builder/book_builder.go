//go:build unit || e2e

package builder

import (
	"time"

	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/usecase/queries"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

type BookBuilder struct {
	ID            int64
	Name          string
	Description   string
	CategoryID    int64
	CategoryTitle string
	Inventory     int
	UnitPrice     decimal.Decimal
	CreatedAt     time.Time
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		ID:            1,
		Name:          "The Left Hand of Darkness",
		Description:   "An envoy on a frozen planet.",
		CategoryID:    1,
		CategoryTitle: "Fiction",
		Inventory:     10,
		UnitPrice:     decimal.RequireFromString("12.50"),
		CreatedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		CategoryID:    b.CategoryID,
		CategoryTitle: b.CategoryTitle,
		Slug:          slug.Make(b.Name),
		Inventory:     b.Inventory,
		UnitPrice:     b.UnitPrice,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *BookBuilder) BuildCreateRequestDTO() reqdto.CreateBookRequest {
	price := b.UnitPrice
	return reqdto.CreateBookRequest{
		Name:        b.Name,
		Description: b.Description,
		CategoryID:  b.CategoryID,
		Inventory:   b.Inventory,
		UnitPrice:   &price,
	}
}
