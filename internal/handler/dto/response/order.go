package response

import (
	"time"

	"bookstore-api/internal/domain/money"
	"bookstore-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ID         int64  `json:"id"`
	BookID     int64  `json:"book_id"`
	BookName   string `json:"book_name"`
	BookSlug   string `json:"book_slug"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
}

type OrderCustomer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// OrderResponse carries the customer block only in staff responses.
type OrderResponse struct {
	ID         int64                `json:"id"`
	Status     string               `json:"status"`
	Items      []*OrderItemResponse `json:"items"`
	TotalPrice string               `json:"total_price"`
	Customer   *OrderCustomer       `json:"customer,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

type OrderListResponse struct {
	Orders     []*OrderResponse `json:"orders"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

var priceOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{{
		SrcType: decimal.Decimal{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(decimal.Decimal).StringFixed(money.Scale), nil
		},
	}},
}

func FromOrderView(v *queries.OrderView, staff bool) (*OrderResponse, error) {
	res := &OrderResponse{}
	if err := copier.CopyWithOption(res, v, priceOption); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*OrderItemResponse{}
	}
	if staff {
		res.Customer = &OrderCustomer{
			ID:        v.CustomerID,
			FirstName: v.CustomerFirst,
			LastName:  v.CustomerLast,
			Email:     v.CustomerEmail,
		}
	}
	return res, nil
}

func FromOrderList(items []*queries.OrderView, next *queries.Cursor, staff bool) (*OrderListResponse, error) {
	res := &OrderListResponse{Orders: make([]*OrderResponse, len(items))}
	for i, it := range items {
		o, err := FromOrderView(it, staff)
		if err != nil {
			return nil, err
		}
		res.Orders[i] = o
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}
