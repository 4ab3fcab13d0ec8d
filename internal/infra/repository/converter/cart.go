package converter

import (
	"bookstore-api/internal/domain/cart"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
)

func CartLineFromRow(row sqlc.ListCartLinesRow) (cart.Line, error) {
	price, err := PriceFromNumeric(row.UnitPrice)
	if err != nil {
		return cart.Line{}, err
	}
	return cart.Line{
		ItemID:    row.ID,
		BookID:    row.BookID,
		BookName:  row.BookName,
		BookSlug:  row.BookSlug,
		Quantity:  int(row.Quantity),
		UnitPrice: price,
	}, nil
}
