package commands

import (
	"context"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/category"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/patch"
	"bookstore-api/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// BookCacheInvalidator drops cached book views after catalog writes commit.
type BookCacheInvalidator interface {
	Invalidate(ctx context.Context, id int64)
	InvalidateAll(ctx context.Context)
}

type CreateBookInput struct {
	Name        string
	Description string
	CategoryID  int64
	Inventory   int
	UnitPrice   decimal.Decimal
}

type UpdateBookInput struct {
	Name        *string
	Description *string
	CategoryID  *int64
	Inventory   *int
	UnitPrice   *decimal.Decimal
}

type UpdateCategoryInput struct {
	Title        *string
	TopBookID    *int64
	TopBookIDSet bool
}

type CatalogCommands interface {
	CreateBook(ctx context.Context, p access.Principal, in CreateBookInput) (int64, error)
	UpdateBook(ctx context.Context, p access.Principal, id int64, in UpdateBookInput) error
	DeleteBook(ctx context.Context, p access.Principal, id int64) error
	CreateCategory(ctx context.Context, p access.Principal, title string, topBookID *int64) (int64, error)
	UpdateCategory(ctx context.Context, p access.Principal, id int64, in UpdateCategoryInput) error
	DeleteCategory(ctx context.Context, p access.Principal, id int64) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cache BookCacheInvalidator
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock, cache BookCacheInvalidator) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk, cache: cache}
}

func (uc *catalogCommandsImpl) CreateBook(ctx context.Context, p access.Principal, in CreateBookInput) (int64, error) {
	if !p.CanMutateCatalog() {
		return 0, errs.ErrForbidden
	}
	b, err := book.NewBook(in.Name, in.Description, in.CategoryID, in.Inventory, in.UnitPrice, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Categories().FindByID(ctx, tx.DB(), in.CategoryID); err != nil {
			return mapRepoErr(err, errs.ErrCategoryNotFound)
		}
		created, err := tx.Books().Create(ctx, tx.DB(), b)
		if err != nil {
			return mapRepoErr(err, errs.ErrBookNotFound)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *catalogCommandsImpl) UpdateBook(ctx context.Context, p access.Principal, id int64, in UpdateBookInput) error {
	if !p.CanMutateCatalog() {
		return errs.ErrForbidden
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Books().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return mapRepoErr(err, errs.ErrBookNotFound)
		}

		categoryID := patch.Coalesce(in.CategoryID, current.CategoryID())
		if categoryID != current.CategoryID() {
			if _, err := tx.Categories().FindByID(ctx, tx.DB(), categoryID); err != nil {
				return mapRepoErr(err, errs.ErrCategoryNotFound)
			}
		}

		next, err := current.Revise(
			patch.Coalesce(in.Name, current.Name()),
			patch.Coalesce(in.Description, current.Description()),
			categoryID,
			patch.Coalesce(in.Inventory, current.Inventory()),
			patch.Coalesce(in.UnitPrice, current.UnitPrice().Decimal()),
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		return mapRepoErr(tx.Books().Update(ctx, tx.DB(), next), errs.ErrBookNotFound)
	})
	if err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, id)
	return nil
}

// DeleteBook fails with a conflict while any order still references the book.
func (uc *catalogCommandsImpl) DeleteBook(ctx context.Context, p access.Principal, id int64) error {
	if !p.CanMutateCatalog() {
		return errs.ErrForbidden
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Books().Delete(ctx, tx.DB(), id), errs.ErrBookNotFound)
	})
	if err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, id)
	return nil
}

func (uc *catalogCommandsImpl) CreateCategory(ctx context.Context, p access.Principal, title string, topBookID *int64) (int64, error) {
	if !p.CanMutateCatalog() {
		return 0, errs.ErrForbidden
	}
	c, err := category.NewCategory(title, topBookID)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureBook(ctx, tx, topBookID); err != nil {
			return err
		}
		created, err := tx.Categories().Create(ctx, tx.DB(), c)
		if err != nil {
			return mapRepoErr(err, errs.ErrCategoryNotFound)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *catalogCommandsImpl) UpdateCategory(ctx context.Context, p access.Principal, id int64, in UpdateCategoryInput) error {
	if !p.CanMutateCatalog() {
		return errs.ErrForbidden
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Categories().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return mapRepoErr(err, errs.ErrCategoryNotFound)
		}

		topBookID := patch.CoalescePtr(in.TopBookIDSet, in.TopBookID, current.TopBookID())
		if in.TopBookIDSet {
			if err := ensureBook(ctx, tx, topBookID); err != nil {
				return err
			}
		}

		next, err := category.NewCategory(patch.Coalesce(in.Title, current.Title()), topBookID)
		if err != nil {
			return err
		}
		next = category.ReconstructCategory(id, next.Title(), next.TopBookID())
		return mapRepoErr(tx.Categories().Update(ctx, tx.DB(), next), errs.ErrCategoryNotFound)
	})
	if err != nil {
		return err
	}
	// cached book views embed the category title
	uc.cache.InvalidateAll(ctx)
	return nil
}

// DeleteCategory cascades to its books and fails with a conflict if any of them were ordered.
func (uc *catalogCommandsImpl) DeleteCategory(ctx context.Context, p access.Principal, id int64) error {
	if !p.CanMutateCatalog() {
		return errs.ErrForbidden
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Categories().Delete(ctx, tx.DB(), id), errs.ErrCategoryNotFound)
	})
	if err != nil {
		return err
	}
	uc.cache.InvalidateAll(ctx)
	return nil
}

func ensureBook(ctx context.Context, tx shared.Tx, bookID *int64) error {
	if bookID == nil {
		return nil
	}
	ok, err := tx.Books().Exists(ctx, tx.DB(), *bookID)
	if err != nil {
		return mapRepoErr(err, errs.ErrBookNotFound)
	}
	if !ok {
		return errs.ErrBookNotFound
	}
	return nil
}
