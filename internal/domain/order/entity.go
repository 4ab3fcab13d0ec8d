package order

import (
	"time"

	"bookstore-api/internal/domain/money"
	"bookstore-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrNonPositiveItemQuantity = errs.Validation("order item quantity must be greater than zero")

// Item is an order line whose price was copied at checkout and never changes.
type Item struct {
	bookID    int64
	quantity  int
	unitPrice money.Price
}

func NewItem(bookID int64, quantity int, unitPrice money.Price) (Item, error) {
	if quantity <= 0 {
		return Item{}, ErrNonPositiveItemQuantity
	}
	return Item{bookID: bookID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (i Item) BookID() int64          { return i.bookID }
func (i Item) Quantity() int          { return i.quantity }
func (i Item) UnitPrice() money.Price { return i.unitPrice }
func (i Item) Total() decimal.Decimal { return i.unitPrice.Times(i.quantity) }

type Order struct {
	id         int64
	customerID int64
	status     Status
	items      []Item
	createdAt  time.Time
	updatedAt  time.Time
}

func Reconstruct(id, customerID int64, status Status, items []Item, createdAt, updatedAt time.Time) *Order {
	return &Order{
		id:         id,
		customerID: customerID,
		status:     status,
		items:      items,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ChangeStatus applies the transition table. It reports false when the
// order already has the requested status.
func (o *Order) ChangeStatus(next Status, now time.Time) (bool, error) {
	if !o.status.CanTransitionTo(next) {
		return false, errs.Wrap(errs.ErrInvalidStatusTransition, string(o.status)+" -> "+string(next))
	}
	if o.status == next {
		return false, nil
	}
	o.status = next
	o.updatedAt = now
	return true, nil
}

func (o *Order) ID() int64            { return o.id }
func (o *Order) CustomerID() int64    { return o.customerID }
func (o *Order) Status() Status       { return o.status }
func (o *Order) Items() []Item        { return o.items }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

func (o *Order) Total() decimal.Decimal {
	amounts := make([]decimal.Decimal, len(o.items))
	for i, it := range o.items {
		amounts[i] = it.Total()
	}
	return money.Sum(amounts...)
}
