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

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Get own profile
// @Description Creates an empty profile on first access
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} httperr.Response
// @Router /customer/me [get]
func (h *CustomerHandler) GetMe(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if err := h.cmds.EnsureProfile(c.Request.Context(), p); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondMe(c)
}

// @Summary Update own profile
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /customer/me [put]
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	var req reqdto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := req.ToProfile()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid birth_date", nil)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), middleware.GetPrincipal(c), profile); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	h.respondMe(c)
}

func (h *CustomerHandler) respondMe(c *gin.Context) {
	view, err := h.q.GetMe(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.CustomerListResponse
// @Failure 403 {object} httperr.Response
// @Router /customer [get]
func (h *CustomerHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListCustomers(c.Request.Context(), middleware.GetPrincipal(c), cursor, limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerList(items, next))
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customer/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetCustomer(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Send private email
// @Description Requires the send_private_email permission. The email is queued for delivery
// @Tags customers
// @Accept json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param request body reqdto.SendPrivateEmailRequest true "Email"
// @Success 202 "Accepted"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customer/{id}/send_private_email [post]
func (h *CustomerHandler) SendPrivateEmail(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.SendPrivateEmailRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.SendPrivateEmail(c.Request.Context(), middleware.GetPrincipal(c), id, req.ToInput()); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
