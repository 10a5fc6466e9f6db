package bootstrap

import (
	"log/slog"

	"appointment-engine/internal/handler/middleware"
	"appointment-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		func(l *middleware.Logger) *slog.Logger { return l.Slog() },
	),
)

// NewRequestLogger also installs the logger as the slog default.
func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
