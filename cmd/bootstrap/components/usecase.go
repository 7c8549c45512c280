package components

import (
	"log/slog"
	"time"

	"resort-engine/internal/domain/pricing"
	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/pkg/clock"
	"resort-engine/internal/pkg/config"
	"resort-engine/internal/usecase/commands"
	"resort-engine/internal/usecase/queries"
	"resort-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	pricing.NewResolver,
	func(cfg config.Config, loc *time.Location) *reservation.Policies {
		return reservation.NewPolicies(reservation.Rules{
			Location:      loc,
			CheckInGrace:  cfg.Policy.CheckInGrace,
			CancelCutoff:  cfg.Policy.CancelCutoff,
			SeatingWindow: cfg.Policy.SeatingWindow,
			MinimumBlock:  cfg.Policy.MinimumBlock,
		})
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewBillingCommands,
		commands.NewResourceCommands,
		func(uow shared.UnitOfWork, tokens commands.TokenIssuer, notifier shared.Notifier, c clock.Clock, cfg config.Config, logger *slog.Logger) commands.CustomerCommands {
			return commands.NewCustomerCommands(uow, tokens, notifier, c, cfg.Policy.VerificationTTL, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewInvoiceQueries,
		queries.NewResourceQueries,
	),
)
