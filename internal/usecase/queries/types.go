package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookView represents read-optimized book data joined with its category
type BookView struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    int64           `json:"category_id"`
	CategoryTitle string          `json:"category_title"`
	Slug          string          `json:"slug"`
	Inventory     int             `json:"inventory"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CategoryView struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	TopBookID  *int64 `json:"top_book_id,omitempty"`
	BooksCount int64  `json:"books_count"`
}

type CommentView struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItemView prices a line at the book's current price
type CartItemView struct {
	ID         int64           `json:"id"`
	BookID     int64           `json:"book_id"`
	BookName   string          `json:"book_name"`
	BookSlug   string          `json:"book_slug"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type CartView struct {
	ID         uuid.UUID       `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	Items      []*CartItemView `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderItemView prices a line at the price frozen at checkout
type OrderItemView struct {
	ID         int64           `json:"id"`
	BookID     int64           `json:"book_id"`
	BookName   string          `json:"book_name"`
	BookSlug   string          `json:"book_slug"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type OrderView struct {
	ID             int64            `json:"id"`
	CustomerID     int64            `json:"customer_id"`
	CustomerUserID uuid.UUID        `json:"customer_user_id"`
	CustomerFirst  string           `json:"customer_first_name"`
	CustomerLast   string           `json:"customer_last_name"`
	CustomerEmail  string           `json:"customer_email"`
	Status         string           `json:"status"`
	Items          []*OrderItemView `json:"items"`
	TotalPrice     decimal.Decimal  `json:"total_price"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type CustomerView struct {
	ID          int64      `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
}
