package components

import (
	"backroom-api/internal/usecase/commands"
	"backroom-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewMailCommands,
		commands.NewEnquiryCommands,
		commands.NewBookingCommands,
		queries.NewBookingQueries,
		queries.NewInquiryQueries,
	),
)
