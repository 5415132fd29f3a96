package components

import (
	"volume-discount-admin/internal/handler"
	"volume-discount-admin/internal/handler/api"
	"volume-discount-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVolumeDiscountHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
