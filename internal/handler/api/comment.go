package api

import (
	"net/http"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	cmds commands.CommentCommands
	q    queries.CommentQueries
}

func NewCommentHandler(cmds commands.CommentCommands, q queries.CommentQueries) *CommentHandler {
	return &CommentHandler{cmds: cmds, q: q}
}

// @Summary List book comments
// @Description Approved comments only
// @Tags comments
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {array} resdto.CommentResponse
// @Failure 404 {object} httperr.Response
// @Router /books/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	bookID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	items, err := h.q.ListApproved(c.Request.Context(), bookID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentList(items))
}

// @Summary Post comment
// @Description New comments wait for moderation before they are listed
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	bookID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), bookID, req.Name, req.Body)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Moderate comment
// @Tags comments
// @Accept json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param comment_id path int true "Comment ID"
// @Param request body reqdto.ModerateCommentRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/{id}/comments/{comment_id} [patch]
func (h *CommentHandler) Moderate(c *gin.Context) {
	bookID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	id, ok := int64Param(c, "comment_id")
	if !ok {
		return
	}
	var req reqdto.ModerateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Moderate(c.Request.Context(), middleware.GetPrincipal(c), bookID, id, req.Status); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
