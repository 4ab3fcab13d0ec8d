package queries

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
)

type CommentReadStore interface {
	ListApproved(ctx context.Context, bookID int64) ([]*CommentView, error)
}

type CommentQueries interface {
	// ListApproved shows only moderated comments; the moderation queue is never public.
	ListApproved(ctx context.Context, bookID int64) ([]*CommentView, error)
}

type commentQueriesImpl struct {
	books    BookReadStore
	comments CommentReadStore
}

func NewCommentQueries(books BookReadStore, comments CommentReadStore) CommentQueries {
	return &commentQueriesImpl{books: books, comments: comments}
}

func (q *commentQueriesImpl) ListApproved(ctx context.Context, bookID int64) ([]*CommentView, error) {
	if _, err := q.books.FindByID(ctx, bookID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookNotFound
		}
		return nil, err
	}
	return q.comments.ListApproved(ctx, bookID)
}
