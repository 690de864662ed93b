package components

import (
	"backroom-api/internal/infra/readstore"
	"backroom-api/internal/infra/repository"
	"backroom-api/internal/usecase/commands"
	"backroom-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Booking
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Enquiry
		fx.Annotate(
			repository.NewEnquiryRepository,
			fx.As(new(commands.EnquiryRepository)),
		),
		fx.Annotate(
			readstore.NewInquiryReadStore,
			fx.As(new(queries.InquiryReadStore)),
		),
	),
)
