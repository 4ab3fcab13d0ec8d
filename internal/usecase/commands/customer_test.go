//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/domain/comment"
	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	h      *txHarness
	sut    commands.CustomerCommands
	mailer access.Principal
}

func (s *CustomerCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newTxHarness(s.ctrl)
	s.sut = commands.NewCustomerCommands(s.h.uow, s.h.clock)
	s.mailer = access.NewPrincipal(uuid.New(), false, []string{string(access.PermSendPrivateEmail)})
}

func (s *CustomerCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerCommandsSuite(t *testing.T) {
	suite.Run(t, new(CustomerCommandsTestSuite))
}

func (s *CustomerCommandsTestSuite) TestEnsureProfile() {
	ctx := context.Background()
	p := access.NewPrincipal(uuid.New(), false, nil)

	s.Run("success", func() {
		s.h.customers.EXPECT().Ensure(gomock.Any(), gomock.Any(), p.UserID).Return(nil)
		s.NoError(s.sut.EnsureProfile(ctx, p))
	})

	s.Run("error: anonymous", func() {
		s.True(errs.Is(s.sut.EnsureProfile(ctx, access.Anonymous()), errs.ErrUnauthenticated))
	})
}

func (s *CustomerCommandsTestSuite) TestUpdateProfile() {
	ctx := context.Background()
	p := access.NewPrincipal(uuid.New(), false, nil)

	s.Run("success", func() {
		s.h.customers.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), fixedNow).
			DoAndReturn(func(_ context.Context, _ any, c *customer.Customer, _ any) (int64, error) {
				s.Equal(p.UserID, c.UserID())
				s.Equal("ada@example.com", c.Email())
				return 3, nil
			})

		s.NoError(s.sut.UpdateProfile(ctx, p, customer.Profile{FirstName: "Ada", Email: "ada@example.com"}))
	})

	s.Run("error: future birth date", func() {
		future := fixedNow.AddDate(0, 0, 1)
		err := s.sut.UpdateProfile(ctx, p, customer.Profile{BirthDate: &future})
		s.True(errs.Is(err, customer.ErrBirthDateInFuture))
	})
}

func (s *CustomerCommandsTestSuite) TestSendPrivateEmail() {
	ctx := context.Background()
	in := commands.PrivateEmailInput{Subject: "  Your order  ", Body: "It shipped."}

	s.Run("success: request is queued on the outbox", func() {
		c := customer.ReconstructCustomer(3, uuid.New(), customer.Profile{FirstName: "Ada", Email: "ada@example.com"})
		s.h.customers.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(3)).Return(c, nil)
		s.h.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, ev shared.OutboxEvent) error {
				s.Equal(shared.EventPrivateEmail, ev.EventType)
				s.Equal(shared.AggregateCustomer, ev.AggregateType)
				var payload shared.PrivateEmailPayload
				s.Require().NoError(json.Unmarshal(ev.Payload, &payload))
				s.Equal("ada@example.com", payload.Email)
				s.Equal("Your order", payload.Subject)
				s.Equal(s.mailer.UserID, payload.SentBy)
				return nil
			})

		s.NoError(s.sut.SendPrivateEmail(ctx, s.mailer, 3, in))
	})

	s.Run("error: staff flag alone is not enough", func() {
		err := s.sut.SendPrivateEmail(ctx, access.NewPrincipal(uuid.New(), true, nil), 3, in)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: blank subject", func() {
		err := s.sut.SendPrivateEmail(ctx, s.mailer, 3, commands.PrivateEmailInput{Subject: "   "})
		s.True(errs.Is(err, commands.ErrEmptySubject))
	})

	s.Run("error: customer without email", func() {
		c := customer.ReconstructCustomer(4, uuid.New(), customer.Profile{FirstName: "Grace"})
		s.h.customers.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(4)).Return(c, nil)

		err := s.sut.SendPrivateEmail(ctx, s.mailer, 4, in)
		s.True(errs.Is(err, commands.ErrEmailMissing))
	})

	s.Run("error: unknown customer", func() {
		s.h.customers.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(5)).Return(nil, repoNotFound("customer"))

		err := s.sut.SendPrivateEmail(ctx, s.mailer, 5, in)
		s.True(errs.Is(err, errs.ErrCustomerNotFound))
	})
}

type CommentCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	h    *txHarness
	sut  commands.CommentCommands
}

func (s *CommentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newTxHarness(s.ctrl)
	s.sut = commands.NewCommentCommands(s.h.uow, s.h.clock)
}

func (s *CommentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCommentCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommentCommandsTestSuite))
}

func (s *CommentCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success: new comments await moderation", func() {
		s.h.books.EXPECT().Exists(gomock.Any(), gomock.Any(), int64(2)).Return(true, nil)
		s.h.comments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *comment.Comment) (int64, error) {
				s.Equal(comment.StatusWaiting, c.Status())
				return 11, nil
			})

		id, err := s.sut.Create(ctx, 2, "reader", "Loved it")
		s.Require().NoError(err)
		s.Equal(int64(11), id)
	})

	s.Run("error: unknown book", func() {
		s.h.books.EXPECT().Exists(gomock.Any(), gomock.Any(), int64(9)).Return(false, nil)

		_, err := s.sut.Create(ctx, 9, "reader", "Loved it")
		s.True(errs.Is(err, errs.ErrBookNotFound))
	})
}

func (s *CommentCommandsTestSuite) TestModerate() {
	ctx := context.Background()
	staff := access.NewPrincipal(uuid.New(), true, nil)

	s.Run("success", func() {
		s.h.comments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(2), int64(11), comment.StatusApproved).Return(nil)
		s.NoError(s.sut.Moderate(ctx, staff, 2, 11, "approved"))
	})

	s.Run("error: customers cannot moderate", func() {
		err := s.sut.Moderate(ctx, access.NewPrincipal(uuid.New(), false, nil), 2, 11, "approved")
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: comment not on that book", func() {
		s.h.comments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(3), int64(11), comment.StatusApproved).Return(repoNotFound("comment"))

		err := s.sut.Moderate(ctx, staff, 3, 11, "approved")
		s.True(errs.Is(err, errs.ErrCommentNotFound))
	})
}
