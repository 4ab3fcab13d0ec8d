package components

import (
	"bookstore-api/internal/handler"
	"bookstore-api/internal/handler/api"
	"bookstore-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCommentHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewCustomerHandler,
		middleware.NewAuthMiddleware,
		func(catalog *api.CatalogHandler, comment *api.CommentHandler, cart *api.CartHandler, order *api.OrderHandler, customer *api.CustomerHandler) handler.Handlers {
			return handler.Handlers{
				Catalog:  catalog,
				Comment:  comment,
				Cart:     cart,
				Order:    order,
				Customer: customer,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
