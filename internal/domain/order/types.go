package order

import "bookstore-api/internal/pkg/errs"

type Status string

const (
	StatusUnpaid   Status = "unpaid"
	StatusPaid     Status = "paid"
	StatusCanceled Status = "canceled"
)

var ErrInvalidStatus = errs.Validation("invalid order status")

// transitions lists the allowed forward moves. Canceled is terminal.
var transitions = map[Status][]Status{
	StatusUnpaid: {StatusPaid, StatusCanceled},
	StatusPaid:   {StatusCanceled},
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusUnpaid, StatusPaid, StatusCanceled:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// CanTransitionTo reports whether s may move to next. Staying put is allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
