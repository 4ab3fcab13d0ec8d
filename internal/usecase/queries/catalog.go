package queries

import (
	"context"
	"log/slog"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
)

type BookReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookView, error)
	List(ctx context.Context, afterID int64, categoryID *int64, limit int32) ([]*BookView, error)
}

type CategoryReadStore interface {
	FindByID(ctx context.Context, id int64) (*CategoryView, error)
	List(ctx context.Context) ([]*CategoryView, error)
}

// BookCache is a read-through cache for single book lookups. Misses and
// cache failures both fall through to the database.
type BookCache interface {
	Get(ctx context.Context, id int64) (*BookView, bool)
	Set(ctx context.Context, view *BookView)
	Invalidate(ctx context.Context, id int64)
}

type BookFilters struct {
	CategoryID *int64
}

type CatalogQueries interface {
	GetBook(ctx context.Context, id int64) (*BookView, error)
	ListBooks(ctx context.Context, filters BookFilters, cursor *Cursor, limit int) ([]*BookView, *Cursor, error)
	GetCategory(ctx context.Context, id int64) (*CategoryView, error)
	ListCategories(ctx context.Context) ([]*CategoryView, error)
}

type catalogQueriesImpl struct {
	books      BookReadStore
	categories CategoryReadStore
	cache      BookCache
}

func NewCatalogQueries(books BookReadStore, categories CategoryReadStore, cache BookCache) CatalogQueries {
	return &catalogQueriesImpl{books: books, categories: categories, cache: cache}
}

func (q *catalogQueriesImpl) GetBook(ctx context.Context, id int64) (*BookView, error) {
	if v, ok := q.cache.Get(ctx, id); ok {
		return v, nil
	}
	v, err := q.books.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookNotFound
		}
		return nil, err
	}
	q.cache.Set(ctx, v)
	return v, nil
}

func (q *catalogQueriesImpl) ListBooks(ctx context.Context, filters BookFilters, cursor *Cursor, limit int) ([]*BookView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var afterID int64
	if cursor != nil && cursor.After != "" {
		id, err := DecodeIDCursor(cursor.After)
		if err != nil {
			slog.Debug("rejecting book cursor", "error", err)
			return nil, nil, errs.ErrInvalidCursor
		}
		afterID = id
	}

	rows, err := q.books.List(ctx, afterID, filters.CategoryID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(last *BookView) string { return EncodeIDCursor(last.ID) })
	return rows, next, nil
}

func (q *catalogQueriesImpl) GetCategory(ctx context.Context, id int64) (*CategoryView, error) {
	v, err := q.categories.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	return q.categories.List(ctx)
}
