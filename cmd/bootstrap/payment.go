package bootstrap

import (
	"backroom-api/internal/infra/payment"
	"backroom-api/internal/pkg/config"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *payment.StripeGateway {
				return payment.NewStripeGateway(cfg.Payment)
			},
			fx.As(new(payment.Gateway)),
		),
	),
)
