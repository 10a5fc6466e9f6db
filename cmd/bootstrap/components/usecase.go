package components

import (
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystem,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewEditRequestUseCase,
		commands.NewBookingRequestUseCase,
		commands.NewJobCardUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewEditRequestQueries,
		queries.NewBookingRequestQueries,
	),
)
