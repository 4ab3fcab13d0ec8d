package category

import (
	"strings"
	"unicode/utf8"

	"bookstore-api/internal/pkg/errs"
)

const MaxTitleLength = 250

var (
	ErrEmptyTitle   = errs.Validation("category title cannot be empty")
	ErrTitleTooLong = errs.Validation("category title exceeds 250 characters")
)

// Category optionally points at a featured book. The book does not have to
// belong to the category.
type Category struct {
	id        int64
	title     string
	topBookID *int64
}

func NewCategory(title string, topBookID *int64) (*Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	return &Category{title: title, topBookID: topBookID}, nil
}

func ReconstructCategory(id int64, title string, topBookID *int64) *Category {
	return &Category{id: id, title: title, topBookID: topBookID}
}

func (c *Category) ID() int64         { return c.id }
func (c *Category) Title() string     { return c.title }
func (c *Category) TopBookID() *int64 { return c.topBookID }
