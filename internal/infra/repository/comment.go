package repository

import (
	"context"

	"bookstore-api/internal/domain/comment"
	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/pgconv"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) (int64, error)
	UpdateCommentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCommentStatusParams) (int64, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
}

func NewCommentRepository(queries CommentWriteQueries) *CommentRepository {
	return &CommentRepository{queries: queries}
}

func (r *CommentRepository) Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (int64, error) {
	id, err := r.queries.CreateComment(ctx, tx, sqlc.CreateCommentParams{
		BookID:    c.BookID(),
		Name:      c.Name(),
		Body:      c.Body(),
		Status:    string(c.Status()),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}

func (r *CommentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookID, commentID int64, status comment.Status) error {
	n, err := r.queries.UpdateCommentStatus(ctx, tx, sqlc.UpdateCommentStatusParams{
		ID:     commentID,
		BookID: bookID,
		Status: string(status),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update comment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("comment not found", nil, infra.KindNotFound)
	}
	return nil
}
