package request

import (
	"bytes"
	"encoding/json"

	"bookstore-api/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateBookRequest struct {
	Name        string           `json:"name" binding:"required,min=6,max=250"`
	Description string           `json:"description"`
	CategoryID  int64            `json:"category_id" binding:"required,min=1"`
	Inventory   int              `json:"inventory" binding:"min=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price" binding:"required"`
}

func (r *CreateBookRequest) ToInput() commands.CreateBookInput {
	return commands.CreateBookInput{
		Name:        r.Name,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Inventory:   r.Inventory,
		UnitPrice:   *r.UnitPrice,
	}
}

type UpdateBookRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=6,max=250"`
	Description *string          `json:"description"`
	CategoryID  *int64           `json:"category_id" binding:"omitempty,min=1"`
	Inventory   *int             `json:"inventory" binding:"omitempty,min=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

func (r *UpdateBookRequest) ToInput() commands.UpdateBookInput {
	return commands.UpdateBookInput{
		Name:        r.Name,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Inventory:   r.Inventory,
		UnitPrice:   r.UnitPrice,
	}
}

// OptionalID tells an absent field apart from an explicit null.
type OptionalID struct {
	Set   bool
	Value *int64
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type CreateCategoryRequest struct {
	Title     string `json:"title" binding:"required,max=250"`
	TopBookID *int64 `json:"top_book_id"`
}

type UpdateCategoryRequest struct {
	Title     *string    `json:"title" binding:"omitempty,max=250"`
	TopBookID OptionalID `json:"top_book_id"`
}

func (r *UpdateCategoryRequest) ToInput() commands.UpdateCategoryInput {
	return commands.UpdateCategoryInput{
		Title:        r.Title,
		TopBookID:    r.TopBookID.Value,
		TopBookIDSet: r.TopBookID.Set,
	}
}

type CreateCommentRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Body string `json:"body" binding:"required"`
}

type ModerateCommentRequest struct {
	Status string `json:"status" binding:"required,oneof=waiting approved not_approved"`
}
