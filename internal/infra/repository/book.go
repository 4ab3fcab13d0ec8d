package repository

import (
	"context"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/repository/converter"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
)

type BookWriteQueries interface {
	GetBook(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Books, error)
	BookExists(ctx context.Context, db sqlc.DBTX, id int64) (bool, error)
	CreateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookParams) (int64, error)
	UpdateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookParams) (int64, error)
	DeleteBook(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type BookRepository struct {
	queries BookWriteQueries
}

func NewBookRepository(queries BookWriteQueries) *BookRepository {
	return &BookRepository{queries: queries}
}

func (r *BookRepository) FindByID(ctx context.Context, tx sqlc.DBTX, bookID int64) (*book.Book, error) {
	row, err := r.queries.GetBook(ctx, tx, bookID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find book", err)
	}
	b, err := converter.BookFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert book", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookRepository) Exists(ctx context.Context, tx sqlc.DBTX, bookID int64) (bool, error) {
	ok, err := r.queries.BookExists(ctx, tx, bookID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check book", err)
	}
	return ok, nil
}

func (r *BookRepository) Create(ctx context.Context, tx sqlc.DBTX, b *book.Book) (int64, error) {
	id, err := r.queries.CreateBook(ctx, tx, converter.BookToCreateParams(b))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create book", err)
	}
	return id, nil
}

func (r *BookRepository) Update(ctx context.Context, tx sqlc.DBTX, b *book.Book) error {
	n, err := r.queries.UpdateBook(ctx, tx, converter.BookToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, tx sqlc.DBTX, bookID int64) error {
	n, err := r.queries.DeleteBook(ctx, tx, bookID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}
