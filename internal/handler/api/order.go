package api

import (
	"net/http"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/pkg/metrics"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds    commands.OrderCommands
	q       queries.OrderQueries
	metrics *metrics.ServerMetrics
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries, m *metrics.ServerMetrics) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q, metrics: m}
}

// @Summary Checkout
// @Description Turns the cart into an unpaid order with frozen prices and deletes the cart
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Cart to check out"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /order [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	p := middleware.GetPrincipal(c)
	orderID, err := h.cmds.Checkout(c.Request.Context(), p, req.CartID)
	if err != nil {
		status, _ := httperr.Status(err)
		h.metrics.ObserveCheckout(http.StatusText(status))
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.metrics.ObserveCheckout("created")
	h.respondOrder(c, http.StatusCreated, orderID)
}

// @Summary List orders
// @Description Staff see every order; customers see their own
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Only 'unpaid' is supported, staff only"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /order [get]
func (h *OrderHandler) List(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	cursor, limit := pageParams(c)

	var (
		items []*queries.OrderView
		next  *queries.Cursor
		err   error
	)
	switch status := c.Query("status"); status {
	case "":
		items, next, err = h.q.ListOrders(c.Request.Context(), p, cursor, limit)
	case "unpaid":
		items, next, err = h.q.ListUnpaidOrders(c.Request.Context(), p, cursor, limit)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, errUnsupportedFilter, "Unsupported status filter", nil)
		return
	}
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromOrderList(items, next, p.IsStaff())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /order/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	h.respondOrder(c, http.StatusOK, id)
}

// @Summary Update order status
// @Description Staff only. unpaid -> paid | canceled, paid -> canceled
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /order/{id} [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), middleware.GetPrincipal(c), id, req.Status); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondOrder(c, http.StatusOK, id)
}

func (h *OrderHandler) respondOrder(c *gin.Context, status int, id int64) {
	p := middleware.GetPrincipal(c)
	view, err := h.q.GetOrder(c.Request.Context(), p, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromOrderView(view, p.IsStaff())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}
