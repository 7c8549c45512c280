package components

import (
	"resort-engine/internal/handler"
	"resort-engine/internal/handler/api"
	"resort-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCustomerHandler,
		api.NewReservationHandler,
		api.NewBillingHandler,
		api.NewResourceHandler,
		func(c *api.CustomerHandler, r *api.ReservationHandler, b *api.BillingHandler, res *api.ResourceHandler) handler.Handlers {
			return handler.Handlers{Customer: c, Reservation: r, Billing: b, Resource: res}
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
