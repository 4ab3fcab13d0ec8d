package comment

import (
	"strings"
	"time"

	"bookstore-api/internal/pkg/errs"
)

type Status string

const (
	StatusWaiting     Status = "waiting"
	StatusApproved    Status = "approved"
	StatusNotApproved Status = "not_approved"
)

const MaxNameLength = 255

var (
	ErrEmptyName     = errs.Validation("comment name cannot be empty")
	ErrNameTooLong   = errs.Validation("comment name exceeds 255 characters")
	ErrEmptyBody     = errs.Validation("comment body cannot be empty")
	ErrInvalidStatus = errs.Validation("invalid comment status")
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusWaiting, StatusApproved, StatusNotApproved:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Comment struct {
	id        int64
	bookID    int64
	name      string
	body      string
	status    Status
	createdAt time.Time
}

// NewComment starts every comment in the moderation queue.
func NewComment(bookID int64, name, body string, now time.Time) (*Comment, error) {
	name = strings.TrimSpace(name)
	body = strings.TrimSpace(body)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if body == "" {
		return nil, ErrEmptyBody
	}
	return &Comment{
		bookID:    bookID,
		name:      name,
		body:      body,
		status:    StatusWaiting,
		createdAt: now,
	}, nil
}

func (c *Comment) ID() int64            { return c.id }
func (c *Comment) BookID() int64        { return c.bookID }
func (c *Comment) Name() string         { return c.name }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) Status() Status       { return c.status }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
