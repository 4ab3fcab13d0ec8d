package readstore

import (
	"context"

	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"
)

type CommentReadQueries interface {
	ListApprovedCommentsByBook(ctx context.Context, db sqlc.DBTX, bookID int64) ([]sqlc.Comments, error)
}

type CommentReadStore struct {
	queries CommentReadQueries
	db      sqlc.DBTX
}

func NewCommentReadStore(queries CommentReadQueries, db sqlc.DBTX) *CommentReadStore {
	return &CommentReadStore{queries: queries, db: db}
}

func (r *CommentReadStore) ListApproved(ctx context.Context, bookID int64) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListApprovedCommentsByBook(ctx, r.db, bookID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved comments", err)
	}
	views := make([]*queries.CommentView, len(rows))
	for i, row := range rows {
		views[i] = &queries.CommentView{
			ID:        row.ID,
			BookID:    row.BookID,
			Name:      row.Name,
			Body:      row.Body,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}
