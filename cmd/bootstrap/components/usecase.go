package components

import (
	"payref-console/internal/infra/storage"
	"payref-console/internal/pkg/clock"
	"payref-console/internal/usecase"
	"payref-console/internal/usecase/commands"
	"payref-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPaymentCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPaymentQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		NewSessionValidator,
	),
)

func NewSessionValidator(store *storage.Store, clk clock.Clock) usecase.SessionValidator {
	return usecase.NewSessionValidator(store, clk)
}
