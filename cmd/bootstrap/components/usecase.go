package components

import (
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/pricing"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (*time.Location, error) {
		return cfg.Booking.Location()
	},
	availability.NewChecker,
	pricing.NewCalculator,
	func(cfg config.Config, loc *time.Location) commands.Policy {
		return commands.Policy{
			CancellationCutoff: time.Duration(cfg.Booking.CancellationHours) * time.Hour,
			Currency:           cfg.Booking.Currency,
			Location:           loc,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewResourceCommands,
		commands.NewSeasonCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(
			reads shared.CommandReads,
			checker *availability.Checker,
			calc *pricing.Calculator,
			clk clock.Clock,
			cfg config.Config,
			loc *time.Location,
		) queries.EngineQueries {
			return queries.NewEngineQueries(reads, checker, calc, clk, cfg.Booking.Currency, loc)
		},
		queries.NewBookingQueries,
		queries.NewSeasonQueries,
	),
)
