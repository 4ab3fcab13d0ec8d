package shared

import (
	"context"
	"time"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/cart"
	"bookstore-api/internal/domain/category"
	"bookstore-api/internal/domain/comment"
	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/domain/order"
	sqlc "bookstore-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only snapshot shared by every query in fn
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Carts() CartRepository
	Orders() OrderRepository
	Customers() CustomerRepository
	Books() BookRepository
	Categories() CategoryRepository
	Comments() CommentRepository
	Outbox() OutboxRepository
	DB() sqlc.DBTX
}

type CartRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *cart.Cart) error
	// LockShared blocks while a checkout holds the cart and fails with NOT_FOUND once it is gone.
	LockShared(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error
	AddItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, add cart.Addition) (itemID int64, quantity int, err error)
	SetItemQuantity(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, itemID int64) error
	Lines(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) ([]cart.Line, error)
	Delete(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, orderID int64) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
}

type CustomerRepository interface {
	FindByUserID(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*customer.Customer, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, customerID int64) (*customer.Customer, error)
	Ensure(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Save(ctx context.Context, tx sqlc.DBTX, c *customer.Customer, now time.Time) (int64, error)
}

type BookRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, bookID int64) (*book.Book, error)
	Exists(ctx context.Context, tx sqlc.DBTX, bookID int64) (bool, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *book.Book) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *book.Book) error
	Delete(ctx context.Context, tx sqlc.DBTX, bookID int64) error
}

type CategoryRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, categoryID int64) (*category.Category, error)
	Create(ctx context.Context, tx sqlc.DBTX, c *category.Category) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, c *category.Category) error
	Delete(ctx context.Context, tx sqlc.DBTX, categoryID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookID, commentID int64, status comment.Status) error
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, ev OutboxEvent) error
	FetchPending(ctx context.Context, tx sqlc.DBTX, limit int32) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, ids []int64, at time.Time) error
}
