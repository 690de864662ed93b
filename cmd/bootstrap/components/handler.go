package components

import (
	"backroom-api/internal/handler"
	"backroom-api/internal/handler/api"
	"backroom-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMailHandler,
		api.NewEnquiryHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
