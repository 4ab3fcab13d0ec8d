package order

import (
	"time"

	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/pkg/errs"
)

// NewFromCart freezes the current line prices into a new unpaid order.
// Lines with zero quantity are dropped; a cart with no remaining lines is empty.
func NewFromCart(customerID int64, lines []cart.Line, now time.Time) (*Order, error) {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		if l.Quantity == 0 {
			continue
		}
		it, err := NewItem(l.BookID, l.Quantity, l.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, errs.ErrEmptyCart
	}

	return &Order{
		customerID: customerID,
		status:     StatusUnpaid,
		items:      items,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}
