package response

import (
	"time"

	"bookstore-api/internal/domain/money"
	"bookstore-api/internal/usecase/queries"
)

type BookCategoryRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type BookResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Slug              string          `json:"slug"`
	Inventory         int             `json:"inventory"`
	UnitPrice         string          `json:"unit_price"`
	UnitPriceAfterTax string          `json:"unit_price_after_tax"`
	Category          BookCategoryRef `json:"category"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	return &BookResponse{
		ID:                v.ID,
		Name:              v.Name,
		Description:       v.Description,
		Slug:              v.Slug,
		Inventory:         v.Inventory,
		UnitPrice:         v.UnitPrice.StringFixed(money.Scale),
		UnitPriceAfterTax: money.AfterTax(v.UnitPrice).StringFixed(money.Scale),
		Category:          BookCategoryRef{ID: v.CategoryID, Title: v.CategoryTitle},
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

type BookListResponse struct {
	Books      []*BookResponse `json:"books"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

func FromBookList(items []*queries.BookView, next *queries.Cursor) *BookListResponse {
	res := &BookListResponse{Books: make([]*BookResponse, len(items))}
	for i, it := range items {
		res.Books[i] = FromBookView(it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type CategoryResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	TopBookID  *int64 `json:"top_book_id"`
	BooksCount int64  `json:"books_count"`
}

func FromCategoryView(v *queries.CategoryView) *CategoryResponse {
	return &CategoryResponse{
		ID:         v.ID,
		Title:      v.Title,
		TopBookID:  v.TopBookID,
		BooksCount: v.BooksCount,
	}
}

func FromCategoryList(items []*queries.CategoryView) []*CategoryResponse {
	res := make([]*CategoryResponse, len(items))
	for i, it := range items {
		res[i] = FromCategoryView(it)
	}
	return res
}

type CommentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCommentList(items []*queries.CommentView) []*CommentResponse {
	res := make([]*CommentResponse, len(items))
	for i, it := range items {
		res[i] = &CommentResponse{ID: it.ID, Name: it.Name, Body: it.Body, CreatedAt: it.CreatedAt}
	}
	return res
}

type IDResponse struct {
	ID int64 `json:"id"`
}
