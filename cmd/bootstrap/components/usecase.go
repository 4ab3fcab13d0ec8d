package components

import (
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/usecase"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogCommands,
		commands.NewCommentCommands,
		commands.NewCartCommands,
		commands.NewOrderCommands,
		commands.NewCustomerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCommentQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewCustomerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
