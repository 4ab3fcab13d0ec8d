package readstore

import (
	"context"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"
)

type BookReadQueries interface {
	GetBookView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookViewRow, error)
	ListBookViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookViewsParams) ([]sqlc.ListBookViewsRow, error)
}

type BookReadStore struct {
	queries BookReadQueries
	db      sqlc.DBTX
}

func NewBookReadStore(queries BookReadQueries, db sqlc.DBTX) *BookReadStore {
	return &BookReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookReadStore) FindByID(ctx context.Context, id int64) (*queries.BookView, error) {
	row, err := r.queries.GetBookView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get book view", err)
	}
	return toBookView(sqlc.ListBookViewsRow(row))
}

func (r *BookReadStore) List(ctx context.Context, afterID int64, categoryID *int64, limit int32) ([]*queries.BookView, error) {
	rows, err := r.queries.ListBookViews(ctx, r.db, sqlc.ListBookViewsParams{
		AfterID:    afterID,
		CategoryID: pgconv.Int64PtrToPgtype(categoryID),
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	views := make([]*queries.BookView, 0, len(rows))
	for _, row := range rows {
		v, cerr := toBookView(row)
		if cerr != nil {
			return nil, cerr
		}
		views = append(views, v)
	}
	return views, nil
}

func toBookView(row sqlc.ListBookViewsRow) (*queries.BookView, error) {
	price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored book price", err, infra.KindDBFailure)
	}
	return &queries.BookView{
		ID:            row.ID,
		Name:          row.Name,
		Description:   row.Description,
		CategoryID:    row.CategoryID,
		CategoryTitle: row.CategoryTitle,
		Slug:          row.Slug,
		Inventory:     int(row.Inventory),
		UnitPrice:     price,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
