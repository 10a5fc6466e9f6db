package cache

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to reach redis")
	}
	return client, nil
}

// RedisSlotLocker claims slot keys with SET NX and a TTL, so a crashed holder
// never blocks a slot for longer than the TTL.
type RedisSlotLocker struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisSlotLocker(client *redis.Client, ttl time.Duration, prefix string) *RedisSlotLocker {
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &RedisSlotLocker{client: client, ttl: ttl, prefix: prefix}
}

func (l *RedisSlotLocker) key(k booking.SlotKey) string {
	return l.prefix + ":" + k.String()
}

// Acquire claims every key or none. When some keys are held elsewhere they
// are returned and nothing stays locked.
func (l *RedisSlotLocker) Acquire(ctx context.Context, keys []booking.SlotKey) (func(), []booking.SlotKey, error) {
	token := uuid.NewString()
	keys = sortedUnique(keys)

	var acquired []string
	var held []booking.SlotKey
	for _, k := range keys {
		redisKey := l.key(k)
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			l.release(acquired, token)
			return nil, nil, errs.Wrap(err, "failed to acquire slot lock")
		}
		if !ok {
			held = append(held, k)
			continue
		}
		acquired = append(acquired, redisKey)
	}

	if len(held) > 0 {
		l.release(acquired, token)
		return nil, held, nil
	}
	var once sync.Once
	return func() { once.Do(func() { l.release(acquired, token) }) }, nil, nil
}

func (l *RedisSlotLocker) release(redisKeys []string, token string) {
	if len(redisKeys) == 0 {
		return
	}
	// the request context may already be cancelled
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, k := range redisKeys {
		if err := releaseScript.Run(ctx, l.client, []string{k}, token).Err(); err != nil {
			slog.Warn("failed to release slot lock", "key", k, "error", err.Error())
		}
	}
}

// LocalSlotLocker is the single-process fallback used when redis is disabled.
type LocalSlotLocker struct {
	mu   sync.Mutex
	held map[booking.SlotKey]struct{}
}

func NewLocalSlotLocker() *LocalSlotLocker {
	return &LocalSlotLocker{held: make(map[booking.SlotKey]struct{})}
}

func (l *LocalSlotLocker) Acquire(_ context.Context, keys []booking.SlotKey) (func(), []booking.SlotKey, error) {
	keys = sortedUnique(keys)

	l.mu.Lock()
	defer l.mu.Unlock()

	var busy []booking.SlotKey
	for _, k := range keys {
		if _, ok := l.held[k]; ok {
			busy = append(busy, k)
		}
	}
	if len(busy) > 0 {
		return nil, busy, nil
	}
	for _, k := range keys {
		l.held[k] = struct{}{}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			for _, k := range keys {
				delete(l.held, k)
			}
		})
	}, nil, nil
}

// sortedUnique orders keys so concurrent callers claim them in the same order.
func sortedUnique(keys []booking.SlotKey) []booking.SlotKey {
	seen := make(map[booking.SlotKey]struct{}, len(keys))
	out := make([]booking.SlotKey, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
