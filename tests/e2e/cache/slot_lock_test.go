//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/infra/cache"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lockTTL = 10 * time.Second

type lockFixture struct {
	client *redis.Client
	prefix string
	locker *cache.RedisSlotLocker
}

func newLockFixture(t *testing.T) *lockFixture {
	t.Helper()
	client, err := cache.NewRedisClient(context.Background(), config.RedisConfig{Addr: e2e.RedisAddr(t)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	prefix := "slot-lock-" + uuid.NewString()
	return &lockFixture{
		client: client,
		prefix: prefix,
		locker: cache.NewRedisSlotLocker(client, lockTTL, prefix),
	}
}

func (f *lockFixture) redisKey(k booking.SlotKey) string {
	return f.prefix + ":" + k.String()
}

func (f *lockFixture) value(t *testing.T, k booking.SlotKey) (string, bool) {
	t.Helper()
	v, err := f.client.Get(context.Background(), f.redisKey(k)).Result()
	if err == redis.Nil {
		return "", false
	}
	require.NoError(t, err)
	return v, true
}

func TestRedisSlotLocker(t *testing.T) {
	ctx := context.Background()
	provider := uuid.New()
	a := booking.SlotKey{Date: "2026-03-10", SlotID: "s09", ProviderID: provider}
	b := booking.SlotKey{Date: "2026-03-12", SlotID: "s10", ProviderID: provider}
	c := booking.SlotKey{Date: "2026-03-14", SlotID: "s11", ProviderID: provider}

	t.Run("claim sets every key with the ttl and release clears them", func(t *testing.T) {
		f := newLockFixture(t)

		release, held, err := f.locker.Acquire(ctx, []booking.SlotKey{c, a, a, b})
		require.NoError(t, err)
		require.Empty(t, held)

		for _, k := range []booking.SlotKey{a, b, c} {
			_, ok := f.value(t, k)
			assert.True(t, ok, k.String())
			ttl, err := f.client.TTL(ctx, f.redisKey(k)).Result()
			require.NoError(t, err)
			assert.Greater(t, ttl, time.Duration(0))
			assert.LessOrEqual(t, ttl, lockTTL)
		}

		release()
		for _, k := range []booking.SlotKey{a, b, c} {
			_, ok := f.value(t, k)
			assert.False(t, ok, k.String())
		}
	})

	t.Run("partial claim reports held keys and rolls back the rest", func(t *testing.T) {
		f := newLockFixture(t)
		other := cache.NewRedisSlotLocker(f.client, lockTTL, f.prefix)

		releaseOther, held, err := other.Acquire(ctx, []booking.SlotKey{b})
		require.NoError(t, err)
		require.Empty(t, held)
		defer releaseOther()

		release, held, err := f.locker.Acquire(ctx, []booking.SlotKey{a, b, c})
		require.NoError(t, err)
		assert.Nil(t, release)
		assert.Equal(t, []booking.SlotKey{b}, held)

		_, ok := f.value(t, a)
		assert.False(t, ok)
		_, ok = f.value(t, c)
		assert.False(t, ok)

		release, held, err = f.locker.Acquire(ctx, []booking.SlotKey{a, c})
		require.NoError(t, err)
		require.Empty(t, held)
		release()
	})

	t.Run("release leaves a lock that another holder took over", func(t *testing.T) {
		f := newLockFixture(t)

		release, _, err := f.locker.Acquire(ctx, []booking.SlotKey{a})
		require.NoError(t, err)

		// the ttl ran out and someone else claimed the slot
		require.NoError(t, f.client.Set(ctx, f.redisKey(a), "someone-else", lockTTL).Err())

		release()

		v, ok := f.value(t, a)
		require.True(t, ok)
		assert.Equal(t, "someone-else", v)
	})

	t.Run("second release is a no-op", func(t *testing.T) {
		f := newLockFixture(t)

		first, _, err := f.locker.Acquire(ctx, []booking.SlotKey{a})
		require.NoError(t, err)
		first()

		second, held, err := f.locker.Acquire(ctx, []booking.SlotKey{a})
		require.NoError(t, err)
		require.Empty(t, held)
		tokenBefore, ok := f.value(t, a)
		require.True(t, ok)

		first()

		tokenAfter, ok := f.value(t, a)
		require.True(t, ok)
		assert.Equal(t, tokenBefore, tokenAfter)
		second()
	})

	t.Run("unreachable redis is an error, not a conflict", func(t *testing.T) {
		f := newLockFixture(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		release, held, err := f.locker.Acquire(cancelled, []booking.SlotKey{a, b})

		require.Error(t, err)
		assert.Nil(t, release)
		assert.Empty(t, held)
	})
}
