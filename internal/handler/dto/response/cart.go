package response

import (
	"bookstore-api/internal/domain/money"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartBookRef struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	UnitPrice string `json:"unit_price"`
}

type CartItemResponse struct {
	ID         int64       `json:"id"`
	Book       CartBookRef `json:"book"`
	Quantity   int         `json:"quantity"`
	TotalPrice string      `json:"total_price"`
}

type CartResponse struct {
	ID         uuid.UUID           `json:"id"`
	Items      []*CartItemResponse `json:"items"`
	TotalPrice string              `json:"total_price"`
}

type CartCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromCartItemView(v *queries.CartItemView) *CartItemResponse {
	return &CartItemResponse{
		ID: v.ID,
		Book: CartBookRef{
			ID:        v.BookID,
			Name:      v.BookName,
			Slug:      v.BookSlug,
			UnitPrice: v.UnitPrice.StringFixed(money.Scale),
		},
		Quantity:   v.Quantity,
		TotalPrice: v.TotalPrice.StringFixed(money.Scale),
	}
}

func FromCartItemList(items []*queries.CartItemView) []*CartItemResponse {
	res := make([]*CartItemResponse, len(items))
	for i, it := range items {
		res[i] = FromCartItemView(it)
	}
	return res
}

func FromCartView(v *queries.CartView) *CartResponse {
	return &CartResponse{
		ID:         v.ID,
		Items:      FromCartItemList(v.Items),
		TotalPrice: v.TotalPrice.StringFixed(money.Scale),
	}
}
