package readstore

import (
	"context"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"
)

type CategoryReadQueries interface {
	GetCategoryView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetCategoryViewRow, error)
	ListCategoryViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListCategoryViewsRow, error)
}

type CategoryReadStore struct {
	queries CategoryReadQueries
	db      sqlc.DBTX
}

func NewCategoryReadStore(queries CategoryReadQueries, db sqlc.DBTX) *CategoryReadStore {
	return &CategoryReadStore{queries: queries, db: db}
}

func (r *CategoryReadStore) FindByID(ctx context.Context, id int64) (*queries.CategoryView, error) {
	row, err := r.queries.GetCategoryView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get category view", err)
	}
	return toCategoryView(sqlc.ListCategoryViewsRow(row)), nil
}

func (r *CategoryReadStore) List(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := r.queries.ListCategoryViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	views := make([]*queries.CategoryView, len(rows))
	for i, row := range rows {
		views[i] = toCategoryView(row)
	}
	return views, nil
}

func toCategoryView(row sqlc.ListCategoryViewsRow) *queries.CategoryView {
	return &queries.CategoryView{
		ID:         row.ID,
		Title:      row.Title,
		TopBookID:  pgconv.Int64PtrFromPgtype(row.TopBookID),
		BooksCount: row.BooksCount,
	}
}
