package bootstrap

import (
	"context"
	"log/slog"

	"appointment-engine/internal/infra/cache"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewSlotLocker,
	),
)

// NewSlotLocker uses redis when enabled so every replica shares the slot
// locks. Without it locks only cover this process.
func NewSlotLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.SlotLocker, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, slot locks are process-local")
		return cache.NewLocalSlotLocker(), nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("redis slot locks enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.LockTTL)
	return cache.NewRedisSlotLocker(client, cfg.Redis.LockTTL, cfg.Redis.Prefix), nil
}
