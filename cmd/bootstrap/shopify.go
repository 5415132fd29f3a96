package bootstrap

import (
	"volume-discount-admin/internal/infra/shopify"
	"volume-discount-admin/internal/usecase"

	"go.uber.org/fx"
)

var ShopifyModule = fx.Module("shopify",
	fx.Provide(
		fx.Annotate(
			shopify.NewAuthenticator,
			fx.As(new(usecase.AdminAuthenticator)),
		),
	),
)
