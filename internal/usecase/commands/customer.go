package commands

import (
	"context"
	"log/slog"
	"strings"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"
)

var (
	ErrEmailMissing = errs.Validation("customer has no email address")
	ErrEmptySubject = errs.Validation("email subject cannot be empty")
)

type PrivateEmailInput struct {
	Subject string
	Body    string
}

type CustomerCommands interface {
	// EnsureProfile creates an empty profile for the caller on first use.
	EnsureProfile(ctx context.Context, p access.Principal) error
	UpdateProfile(ctx context.Context, p access.Principal, profile customer.Profile) error
	// SendPrivateEmail records an email request for the outbox relay; delivery happens downstream.
	SendPrivateEmail(ctx context.Context, p access.Principal, customerID int64, in PrivateEmailInput) error
}

type customerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomerCommands(uow shared.UnitOfWork, clk clock.Clock) CustomerCommands {
	return &customerCommandsImpl{uow: uow, clock: clk}
}

func (uc *customerCommandsImpl) EnsureProfile(ctx context.Context, p access.Principal) error {
	if !p.IsAuthenticated() {
		return errs.ErrUnauthenticated
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRepoErr(tx.Customers().Ensure(ctx, tx.DB(), p.UserID), errs.ErrCustomerNotFound)
	})
}

func (uc *customerCommandsImpl) UpdateProfile(ctx context.Context, p access.Principal, profile customer.Profile) error {
	if !p.IsAuthenticated() {
		return errs.ErrUnauthenticated
	}
	now := uc.clock.Now()
	c, err := customer.NewCustomer(p.UserID, profile, now)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Customers().Save(ctx, tx.DB(), c, now)
		return mapRepoErr(err, errs.ErrCustomerNotFound)
	})
}

func (uc *customerCommandsImpl) SendPrivateEmail(ctx context.Context, p access.Principal, customerID int64, in PrivateEmailInput) error {
	if !p.CanSendPrivateEmail() {
		return errs.ErrForbidden
	}
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return ErrEmptySubject
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Customers().FindByID(ctx, tx.DB(), customerID)
		if err != nil {
			return mapRepoErr(err, errs.ErrCustomerNotFound)
		}
		if c.Email() == "" {
			return ErrEmailMissing
		}

		now := uc.clock.Now()
		ev, err := shared.NewOutboxEvent(shared.AggregateCustomer, c.ID(), shared.EventPrivateEmail, shared.PrivateEmailPayload{
			CustomerID: c.ID(),
			Email:      c.Email(),
			Subject:    subject,
			Body:       in.Body,
			SentBy:     p.UserID,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.Outbox().Append(ctx, tx.DB(), ev); err != nil {
			return mapRepoErr(err, errs.ErrCustomerNotFound)
		}
		slog.Info("private email queued", "customer_id", c.ID(), "sent_by", p.UserID.String())
		return nil
	})
}
