package components

import (
	"appointment-engine/internal/handler"
	"appointment-engine/internal/handler/api"
	"appointment-engine/internal/handler/middleware"
	"appointment-engine/internal/pkg/jwt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(pool *pgxpool.Pool) *api.HealthHandler {
			return api.NewHealthHandler(pool)
		},
		api.NewBookingHandler,
		api.NewEditRequestHandler,
		api.NewBookingRequestHandler,
		api.NewJobCardHandler,
		api.NewAvailabilityHandler,
		func(svc *jwt.Service) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(svc)
		},
	),
	fx.Invoke(handler.NewRouter),
)
