package bootstrap

import (
	"time"

	"backroom-api/internal/pkg/config"
	"backroom-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.Admin.JWTDuration)
	if err != nil {
		panic("invalid ADMIN_JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Admin.JWTSecret, tokenDuration)
}
