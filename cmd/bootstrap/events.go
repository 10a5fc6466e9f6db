package bootstrap

import (
	"context"
	"log/slog"

	"appointment-engine/internal/infra/events"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) commands.EventPublisher {
	if !cfg.AMQP.Enabled {
		return events.LogPublisher{}
	}

	publisher := events.NewAMQPPublisher(
		cfg.AMQP.URL,
		cfg.AMQP.Exchange,
		cfg.AMQP.DialTimeout,
		cfg.AMQP.RetryDelay,
		events.WithClock(clk),
	)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	logger.Info("publishing booking events", "exchange", cfg.AMQP.Exchange)
	return publisher
}
