package bootstrap

import (
	"backroom-api/internal/infra/mail"
	"backroom-api/internal/pkg/config"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *mail.SendGridSender {
				return mail.NewSendGridSender(cfg.Mail)
			},
			fx.As(new(mail.Sender)),
		),
	),
)
