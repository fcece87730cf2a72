package components

import (
	"evcharge/internal/pkg/clock"
	"evcharge/internal/usecase/commands"
	"evcharge/internal/usecase/queries"
	"evcharge/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewChargerLocks,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewClientCommands,
		commands.NewStationCommands,
		commands.NewChargerCommands,
		commands.NewReservationCommands,
		commands.NewDiscountCommands,
		commands.NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewStationQueries,
		queries.NewPricingQueries,
	),
)
