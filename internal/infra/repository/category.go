package repository

import (
	"context"

	"bookstore-api/internal/domain/category"
	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
)

type CategoryWriteQueries interface {
	GetCategoryView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetCategoryViewRow, error)
	CreateCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCategoryParams) (int64, error)
	UpdateCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCategoryParams) (int64, error)
	DeleteCategory(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type CategoryRepository struct {
	queries CategoryWriteQueries
}

func NewCategoryRepository(queries CategoryWriteQueries) *CategoryRepository {
	return &CategoryRepository{queries: queries}
}

func (r *CategoryRepository) FindByID(ctx context.Context, tx sqlc.DBTX, categoryID int64) (*category.Category, error) {
	row, err := r.queries.GetCategoryView(ctx, tx, categoryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find category", err)
	}
	return category.ReconstructCategory(row.ID, row.Title, pgconv.Int64PtrFromPgtype(row.TopBookID)), nil
}

func (r *CategoryRepository) Create(ctx context.Context, tx sqlc.DBTX, c *category.Category) (int64, error) {
	id, err := r.queries.CreateCategory(ctx, tx, sqlc.CreateCategoryParams{
		Title:     c.Title(),
		TopBookID: pgconv.Int64PtrToPgtype(c.TopBookID()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create category", err)
	}
	return id, nil
}

func (r *CategoryRepository) Update(ctx context.Context, tx sqlc.DBTX, c *category.Category) error {
	n, err := r.queries.UpdateCategory(ctx, tx, sqlc.UpdateCategoryParams{
		ID:        c.ID(),
		Title:     c.Title(),
		TopBookID: pgconv.Int64PtrToPgtype(c.TopBookID()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, tx sqlc.DBTX, categoryID int64) error {
	n, err := r.queries.DeleteCategory(ctx, tx, categoryID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}
