package commands

import (
	"context"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/domain/comment"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"
)

type CommentCommands interface {
	// Create queues a comment for moderation. Anyone may comment.
	Create(ctx context.Context, bookID int64, name, body string) (int64, error)
	Moderate(ctx context.Context, p access.Principal, bookID, commentID int64, status string) error
}

type commentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentCommandsImpl{uow: uow, clock: clk}
}

func (uc *commentCommandsImpl) Create(ctx context.Context, bookID int64, name, body string) (int64, error) {
	c, err := comment.NewComment(bookID, name, body, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureBook(ctx, tx, &bookID); err != nil {
			return err
		}
		created, err := tx.Comments().Create(ctx, tx.DB(), c)
		if err != nil {
			return mapRepoErr(err, errs.ErrBookNotFound)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *commentCommandsImpl) Moderate(ctx context.Context, p access.Principal, bookID, commentID int64, status string) error {
	if !p.CanModerateComments() {
		return errs.ErrForbidden
	}
	st, err := comment.ParseStatus(status)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Comments().UpdateStatus(ctx, tx.DB(), bookID, commentID, st), errs.ErrCommentNotFound)
	})
}
