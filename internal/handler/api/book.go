package api

import (
	"net/http"
	"strconv"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List books
// @Description List books with keyset pagination, optionally filtered by category
// @Tags books
// @Produce json
// @Param category_id query int false "Category ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BookListResponse
// @Failure 400 {object} httperr.Response
// @Router /books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	var filters queries.BookFilters
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category_id", nil)
			return
		}
		filters.CategoryID = &id
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListBooks(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookList(items, next))
}

// @Summary Get book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetBook(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookRequest true "Book"
// @Success 201 {object} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books [post]
func (h *CatalogHandler) CreateBook(c *gin.Context) {
	var req reqdto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateBook(c.Request.Context(), middleware.GetPrincipal(c), req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondBook(c, http.StatusCreated, id)
}

// @Summary Update book
// @Description Partial update; omitted fields keep their value
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param request body reqdto.UpdateBookRequest true "Fields to change"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [patch]
func (h *CatalogHandler) UpdateBook(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateBook(c.Request.Context(), middleware.GetPrincipal(c), id, req.ToInput()); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondBook(c, http.StatusOK, id)
}

// @Summary Delete book
// @Tags books
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /books/{id} [delete]
func (h *CatalogHandler) DeleteBook(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteBook(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) respondBook(c *gin.Context, status int, id int64) {
	view, err := h.q.GetBook(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load book", nil)
		return
	}
	c.JSON(status, resdto.FromBookView(view))
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	items, err := h.q.ListCategories(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryList(items))
}

// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 404 {object} httperr.Response
// @Router /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetCategory(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} resdto.CategoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateCategory(c.Request.Context(), middleware.GetPrincipal(c), req.Title, req.TopBookID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondCategory(c, http.StatusCreated, id)
}

// @Summary Update category
// @Description Partial update; top_book_id may be set to null
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /categories/{id} [patch]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateCategory(c.Request.Context(), middleware.GetPrincipal(c), id, req.ToInput()); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondCategory(c, http.StatusOK, id)
}

// @Summary Delete category
// @Description Deletes the category and its books
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteCategory(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) respondCategory(c *gin.Context, status int, id int64) {
	view, err := h.q.GetCategory(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load category", nil)
		return
	}
	c.JSON(status, resdto.FromCategoryView(view))
}
