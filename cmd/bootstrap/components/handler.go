package components

import (
	"venuebook/internal/handler"
	"venuebook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewBookingHandler,
		api.NewSeasonHandler,
	),
	fx.Invoke(handler.NewRouter),
)
