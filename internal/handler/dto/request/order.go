package request

import "github.com/google/uuid"

type CreateOrderRequest struct {
	CartID uuid.UUID `json:"cart_id" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unpaid paid canceled"`
}
