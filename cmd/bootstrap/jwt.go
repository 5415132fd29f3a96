package bootstrap

import (
	"volume-discount-admin/internal/pkg/config"
	"volume-discount-admin/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Shopify.APIKey, cfg.Shopify.APISecret, cfg.Shopify.SessionLeeway)
}
