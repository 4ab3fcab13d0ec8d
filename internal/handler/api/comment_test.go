//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"bookstore-api/internal/domain/comment"
	"bookstore-api/internal/handler/api"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/queries"
	"bookstore-api/tests/common/httptest"
	commandsmock "bookstore-api/tests/mock/commands"
	queriesmock "bookstore-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCommentCommands
	mockQueries  *queriesmock.MockCommentQueries
}

func (s *CommentHandlerTestSuite) SetupTest() {
	r, auth := newTestEngine()
	s.router = r

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCommentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCommentQueries(s.mockCtrl)
	h := api.NewCommentHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/books/:id/comments", h.List)
	s.router.POST("/books/:id/comments", h.Create)
	s.router.PATCH("/books/:id/comments/:comment_id", auth.RequireAuth(), h.Moderate)
}

func (s *CommentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommentHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}

func (s *CommentHandlerTestSuite) TestList() {
	s.Run("success: approved comments only", func() {
		views := []*queries.CommentView{{ID: 1, BookID: 2, Name: "reader", Body: "Loved it", CreatedAt: time.Now()}}
		s.mockQueries.EXPECT().ListApproved(gomock.Any(), int64(2)).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/2/comments", nil, "")

		var body []*resdto.CommentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: unknown book", func() {
		s.mockQueries.EXPECT().ListApproved(gomock.Any(), int64(9)).Return(nil, errs.ErrBookNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/9/comments", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})
}

func (s *CommentHandlerTestSuite) TestCreate() {
	s.Run("success: anonymous readers may comment", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), int64(2), "reader", "Loved it").Return(int64(11), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books/2/comments",
			map[string]any{"name": "reader", "body": "Loved it"}, "")

		var body resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(11), body.ID)
	})

	s.Run("error: body is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books/2/comments",
			map[string]any{"name": "reader"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CommentHandlerTestSuite) TestModerate() {
	url := "/books/2/comments/11"

	s.Run("success: staff approve", func() {
		s.mockCommands.EXPECT().Moderate(gomock.Any(), staffPrincipal, int64(2), int64(11), "approved").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "approved"}, staffToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: customers cannot moderate", func() {
		s.mockCommands.EXPECT().Moderate(gomock.Any(), customerPrincipal, int64(2), int64(11), "approved").Return(errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "approved"}, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Permission denied")
	})

	s.Run("error: unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "spam"}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: comment on another book", func() {
		s.mockCommands.EXPECT().Moderate(gomock.Any(), staffPrincipal, int64(2), int64(11), string(comment.StatusNotApproved)).
			Return(errs.ErrCommentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "not_approved"}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Comment not found")
	})
}
