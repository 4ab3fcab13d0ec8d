package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookstore-api/internal/handler/api"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog  *api.CatalogHandler
	Comment  *api.CommentHandler
	Cart     *api.CartHandler
	Order    *api.OrderHandler
	Customer *api.CustomerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.ServerMetrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.ServerMetrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.ServerMetrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.OptionalAuth())
	requireAuth := authMiddleware.RequireAuth()

	books := apiGroup.Group("/books")
	addRoutes(books, []route{
		{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListBooks},
		{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateBook, Mw: []gin.HandlerFunc{requireAuth}},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetBook},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateBook, Mw: []gin.HandlerFunc{requireAuth}},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteBook, Mw: []gin.HandlerFunc{requireAuth}},
		{Method: http.MethodGet, Path: "/:id/comments", Handler: h.Comment.List},
		{Method: http.MethodPost, Path: "/:id/comments", Handler: h.Comment.Create},
		{Method: http.MethodPatch, Path: "/:id/comments/:comment_id", Handler: h.Comment.Moderate, Mw: []gin.HandlerFunc{requireAuth}},
	})

	categories := apiGroup.Group("/categories")
	addRoutes(categories, []route{
		{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListCategories},
		{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateCategory, Mw: []gin.HandlerFunc{requireAuth}},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetCategory},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateCategory, Mw: []gin.HandlerFunc{requireAuth}},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteCategory, Mw: []gin.HandlerFunc{requireAuth}},
	})

	cart := apiGroup.Group("/cart")
	addRoutes(cart, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Cart.Create},
		{Method: http.MethodGet, Path: "/:token", Handler: h.Cart.Get},
		{Method: http.MethodDelete, Path: "/:token", Handler: h.Cart.Delete},
		{Method: http.MethodGet, Path: "/:token/items", Handler: h.Cart.ListItems},
		{Method: http.MethodPost, Path: "/:token/items", Handler: h.Cart.AddItem},
		{Method: http.MethodPatch, Path: "/:token/items/:item_id", Handler: h.Cart.UpdateItem},
		{Method: http.MethodDelete, Path: "/:token/items/:item_id", Handler: h.Cart.RemoveItem},
	})

	orders := apiGroup.Group("/order")
	orders.Use(requireAuth)
	addRoutes(orders, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Order.Checkout},
		{Method: http.MethodGet, Path: "", Handler: h.Order.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Order.UpdateStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireStaff()}},
	})

	customers := apiGroup.Group("/customer")
	customers.Use(requireAuth)
	addRoutes(customers, []route{
		{Method: http.MethodGet, Path: "/me", Handler: h.Customer.GetMe},
		{Method: http.MethodPut, Path: "/me", Handler: h.Customer.UpdateMe},
		{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
		{Method: http.MethodPost, Path: "/:id/send_private_email", Handler: h.Customer.SendPrivateEmail},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
