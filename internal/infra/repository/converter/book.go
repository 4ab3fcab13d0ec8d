package converter

import (
	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/money"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookToCreateParams(b *book.Book) sqlc.CreateBookParams {
	return sqlc.CreateBookParams{
		Name:        b.Name(),
		Description: b.Description(),
		CategoryID:  b.CategoryID(),
		Slug:        b.Slug(),
		Inventory:   pgconv.IntToInt32(b.Inventory()),
		UnitPrice:   pgconv.DecimalToNumeric(b.UnitPrice().Decimal()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookToUpdateParams(b *book.Book) sqlc.UpdateBookParams {
	return sqlc.UpdateBookParams{
		ID:          b.ID(),
		Name:        b.Name(),
		Description: b.Description(),
		CategoryID:  b.CategoryID(),
		Slug:        b.Slug(),
		Inventory:   pgconv.IntToInt32(b.Inventory()),
		UnitPrice:   pgconv.DecimalToNumeric(b.UnitPrice().Decimal()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookFromRow(row sqlc.Books) (*book.Book, error) {
	price, err := PriceFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, err
	}
	return book.ReconstructBook(
		row.ID,
		row.Name,
		row.Description,
		row.CategoryID,
		row.Slug,
		int(row.Inventory),
		price,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func PriceFromNumeric(n pgtype.Numeric) (money.Price, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return money.Price{}, err
	}
	return money.NewPrice(d)
}
