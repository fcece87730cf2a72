package components

import (
	"evcharge/internal/handler"
	"evcharge/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStationHandler,
		api.NewChargerHandler,
		api.NewClientHandler,
		api.NewReservationHandler,
		api.NewDiscountHandler,
		api.NewCheckoutHandler,
	),
	fx.Invoke(handler.NewRouter),
)
