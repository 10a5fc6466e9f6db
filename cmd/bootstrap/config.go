package bootstrap

import (
	"time"

	"appointment-engine/internal/domain/payment"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingLocation,
		NewBookingSettings,
	),
)

func NewBookingLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}

func NewBookingSettings(cfg config.Config, loc *time.Location) commands.BookingSettings {
	method := cfg.Booking.PaymentMethod
	if method == "" {
		method = payment.MethodCash
	}
	return commands.BookingSettings{
		Location:      loc,
		PaymentMethod: method,
	}
}
