package api

import (
	"net/http"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler serves guest carts; the token in the path is the only credential.
type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Create cart
// @Tags cart
// @Produce json
// @Success 201 {object} resdto.CartCreatedResponse
// @Router /cart [post]
func (h *CartHandler) Create(c *gin.Context) {
	id, err := h.cmds.CreateCart(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CartCreatedResponse{ID: id})
}

// @Summary Get cart
// @Description Lines are priced at the current book price
// @Tags cart
// @Produce json
// @Param token path string true "Cart token"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /cart/{token} [get]
func (h *CartHandler) Get(c *gin.Context) {
	token, ok := uuidParam(c, "token")
	if !ok {
		return
	}
	view, err := h.q.GetCart(c.Request.Context(), token)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Delete cart
// @Tags cart
// @Param token path string true "Cart token"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /cart/{token} [delete]
func (h *CartHandler) Delete(c *gin.Context) {
	token, ok := uuidParam(c, "token")
	if !ok {
		return
	}
	if err := h.cmds.DeleteCart(c.Request.Context(), token); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List cart items
// @Tags cart
// @Produce json
// @Param token path string true "Cart token"
// @Success 200 {array} resdto.CartItemResponse
// @Failure 404 {object} httperr.Response
// @Router /cart/{token}/items [get]
func (h *CartHandler) ListItems(c *gin.Context) {
	token, ok := uuidParam(c, "token")
	if !ok {
		return
	}
	items, err := h.q.ListItems(c.Request.Context(), token)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartItemList(items))
}

// @Summary Add cart item
// @Description Adding a book already in the cart increases its quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param token path string true "Cart token"
// @Param request body reqdto.AddCartItemRequest true "Item"
// @Success 201 {object} resdto.CartItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/{token}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	token, ok := uuidParam(c, "token")
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	itemID, err := h.cmds.AddItem(c.Request.Context(), token, req.BookID, req.Quantity)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondItem(c, http.StatusCreated, token, itemID)
}

// @Summary Set cart item quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param token path string true "Cart token"
// @Param item_id path int true "Cart item ID"
// @Param request body reqdto.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} resdto.CartItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/{token}/items/{item_id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	token, ok := uuidParam(c, "token")
	if !ok {
		return
	}
	itemID, ok := int64Param(c, "item_id")
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateItemQuantity(c.Request.Context(), token, itemID, *req.Quantity); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondItem(c, http.StatusOK, token, itemID)
}

// @Summary Remove cart item
// @Tags cart
// @Param token path string true "Cart token"
// @Param item_id path int true "Cart item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /cart/{token}/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	token, ok := uuidParam(c, "token")
	if !ok {
		return
	}
	itemID, ok := int64Param(c, "item_id")
	if !ok {
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), token, itemID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondItem(c *gin.Context, status int, cartID uuid.UUID, itemID int64) {
	view, err := h.q.GetItem(c.Request.Context(), cartID, itemID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromCartItemView(view))
}
