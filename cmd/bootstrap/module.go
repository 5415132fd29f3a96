package bootstrap

import (
	"volume-discount-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	ShopifyModule,
	components.UseCaseModule,
	components.HandlerModule,
)
