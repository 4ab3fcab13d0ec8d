package request

type AddCartItemRequest struct {
	BookID   int64 `json:"book_id" binding:"required,min=1"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest allows zero; such lines are skipped at checkout.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}
