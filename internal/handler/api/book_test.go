//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"bookstore-api/internal/domain/access"
	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/handler/api"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"
	"bookstore-api/tests/common/builder"
	"bookstore-api/tests/common/httptest"
	"bookstore-api/tests/common/testutil"
	commandsmock "bookstore-api/tests/mock/commands"
	queriesmock "bookstore-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	r, auth := newTestEngine()
	s.router = r

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	h := api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/books", h.ListBooks)
	s.router.POST("/books", auth.RequireAuth(), h.CreateBook)
	s.router.GET("/books/:id", h.GetBook)
	s.router.PATCH("/books/:id", auth.RequireAuth(), h.UpdateBook)
	s.router.DELETE("/books/:id", auth.RequireAuth(), h.DeleteBook)
	s.router.GET("/categories", h.ListCategories)
	s.router.POST("/categories", auth.RequireAuth(), h.CreateCategory)
	s.router.GET("/categories/:id", h.GetCategory)
	s.router.PATCH("/categories/:id", auth.RequireAuth(), h.UpdateCategory)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

// ================================================================================
// TestGetBook / TestListBooks
// ================================================================================

func (s *CatalogHandlerTestSuite) TestGetBook() {
	view := builder.NewBookBuilder().BuildView()

	s.Run("success: price and after-tax price as fixed strings", func() {
		s.mockQueries.EXPECT().GetBook(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/1", nil, "")

		var body resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("12.50", body.UnitPrice)
		s.Equal("13.63", body.UnitPriceAfterTax)
		s.Equal("the-left-hand-of-darkness", body.Slug)
		s.Equal(resdto.BookCategoryRef{ID: 1, Title: "Fiction"}, body.Category)
	})

	s.Run("error: unknown book", func() {
		s.mockQueries.EXPECT().GetBook(gomock.Any(), int64(404)).Return(nil, errs.ErrBookNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/404", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})

	s.Run("error: id must be numeric", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/dune", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *CatalogHandlerTestSuite) TestListBooks() {
	view := builder.NewBookBuilder().BuildView()

	s.Run("success: category filter is passed through", func() {
		s.mockQueries.EXPECT().ListBooks(gomock.Any(), gomock.Any(), gomock.Nil(), queries.DefaultListLimit).
			DoAndReturn(func(_ context.Context, f queries.BookFilters, _ *queries.Cursor, _ int) ([]*queries.BookView, *queries.Cursor, error) {
				s.Require().NotNil(f.CategoryID)
				s.Equal(int64(3), *f.CategoryID)
				return []*queries.BookView{view}, &queries.Cursor{After: "next"}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books?category_id=3", nil, "")

		var body resdto.BookListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Books, 1)
		s.Equal("next", body.NextCursor)
	})

	s.Run("error: non-numeric category filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books?category_id=x", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid category_id")
	})
}

// ================================================================================
// TestCreateBook
// ================================================================================

type testCaseBook struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *CatalogHandlerTestSuite) TestCreateBook() {
	bb := builder.NewBookBuilder()
	reqBody := bb.BuildCreateRequestDTO()
	view := bb.BuildView()

	s.Run("success: staff create a book", func() {
		s.mockCommands.EXPECT().CreateBook(gomock.Any(), staffPrincipal, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ access.Principal, in commands.CreateBookInput) (int64, error) {
				s.Equal(bb.Name, in.Name)
				s.True(decimal.RequireFromString("12.5").Equal(in.UnitPrice))
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetBook(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", reqBody, staffToken)

		var body resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseBook{
			{name: "name shorter than 6", mutate: testutil.Field("name", "Dune"), expectCode: http.StatusBadRequest},
			{name: "name longer than 250", mutate: testutil.Field("name", strings.Repeat("a", 251)), expectCode: http.StatusBadRequest},
			{name: "missing unit_price", mutate: testutil.Field("unit_price", nil), expectCode: http.StatusBadRequest},
			{name: "missing category_id", mutate: testutil.Field("category_id", nil), expectCode: http.StatusBadRequest},
			{name: "negative inventory", mutate: testutil.Field("inventory", -1), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", testutil.DtoMap(s.T(), reqBody, tc.mutate), staffToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			token          string
			principal      access.Principal
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"customers cannot write the catalog", customerToken, customerPrincipal, errs.ErrForbidden, http.StatusForbidden, "Permission denied"},
			{"unknown category", staffToken, staffPrincipal, errs.ErrCategoryNotFound, http.StatusNotFound, "Category not found"},
			{"domain rejects the name", staffToken, staffPrincipal, book.ErrNameTooShort, http.StatusBadRequest, "at least 6 characters"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBook(gomock.Any(), tc.principal, gomock.Any()).Return(int64(0), tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", reqBody, tc.token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateBook / TestDeleteBook
// ================================================================================

func (s *CatalogHandlerTestSuite) TestUpdateBook() {
	view := builder.NewBookBuilder().With(func(b *builder.BookBuilder) { b.Inventory = 3 }).BuildView()

	s.Run("success: omitted fields stay nil", func() {
		s.mockCommands.EXPECT().UpdateBook(gomock.Any(), staffPrincipal, int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ access.Principal, _ int64, in commands.UpdateBookInput) error {
				s.Require().NotNil(in.Inventory)
				s.Equal(3, *in.Inventory)
				s.Nil(in.Name)
				s.Nil(in.UnitPrice)
				return nil
			})
		s.mockQueries.EXPECT().GetBook(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/books/1", map[string]any{"inventory": 3}, staffToken)

		var body resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Inventory)
	})

	s.Run("error: unknown book", func() {
		s.mockCommands.EXPECT().UpdateBook(gomock.Any(), staffPrincipal, int64(9), gomock.Any()).Return(errs.ErrBookNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/books/9", map[string]any{"inventory": 3}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})
}

func (s *CatalogHandlerTestSuite) TestDeleteBook() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeleteBook(gomock.Any(), staffPrincipal, int64(1)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/books/1", nil, staffToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: book referenced by an order", func() {
		s.mockCommands.EXPECT().DeleteBook(gomock.Any(), staffPrincipal, int64(1)).Return(errs.ErrConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/books/1", nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Conflicting state")
	})
}

// ================================================================================
// Categories
// ================================================================================

func (s *CatalogHandlerTestSuite) TestCategories() {
	top := int64(4)
	view := &queries.CategoryView{ID: 2, Title: "Science Fiction", TopBookID: &top, BooksCount: 5}

	s.Run("success: list", func() {
		s.mockQueries.EXPECT().ListCategories(gomock.Any()).Return([]*queries.CategoryView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/categories", nil, "")

		var body []*resdto.CategoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(int64(5), body[0].BooksCount)
	})

	s.Run("success: create with a top book", func() {
		s.mockCommands.EXPECT().CreateCategory(gomock.Any(), staffPrincipal, "Science Fiction", &top).Return(int64(2), nil)
		s.mockQueries.EXPECT().GetCategory(gomock.Any(), int64(2)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/categories",
			map[string]any{"title": "Science Fiction", "top_book_id": 4}, staffToken)

		var body resdto.CategoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Science Fiction", body.Title)
	})

	s.Run("success: explicit null clears the top book", func() {
		s.mockCommands.EXPECT().UpdateCategory(gomock.Any(), staffPrincipal, int64(2), commands.UpdateCategoryInput{TopBookIDSet: true}).Return(nil)
		s.mockQueries.EXPECT().GetCategory(gomock.Any(), int64(2)).Return(&queries.CategoryView{ID: 2, Title: "Science Fiction"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/categories/2", map[string]any{"top_book_id": nil}, staffToken)

		var body resdto.CategoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.TopBookID)
	})

	s.Run("success: omitted top book is left alone", func() {
		title := "SF"
		s.mockCommands.EXPECT().UpdateCategory(gomock.Any(), staffPrincipal, int64(2), commands.UpdateCategoryInput{Title: &title}).Return(nil)
		s.mockQueries.EXPECT().GetCategory(gomock.Any(), int64(2)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/categories/2", map[string]any{"title": "SF"}, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: empty title", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/categories", map[string]any{"title": ""}, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
