//go:build unit

package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/infra/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSlotLocker(t *testing.T) {
	ctx := context.Background()
	provider := uuid.New()
	a := booking.SlotKey{Date: "2025-03-10", SlotID: "s09", ProviderID: provider}
	b := booking.SlotKey{Date: "2025-03-12", SlotID: "s10", ProviderID: provider}
	c := booking.SlotKey{Date: "2025-03-14", SlotID: "s11", ProviderID: provider}

	t.Run("overlapping claim reports only the held keys", func(t *testing.T) {
		l := cache.NewLocalSlotLocker()

		release, held, err := l.Acquire(ctx, []booking.SlotKey{a, b})
		require.NoError(t, err)
		require.Empty(t, held)
		require.NotNil(t, release)

		_, held, err = l.Acquire(ctx, []booking.SlotKey{c, b})
		require.NoError(t, err)
		assert.Equal(t, []booking.SlotKey{b}, held)

		// the failed claim must not leave c locked
		releaseC, held, err := l.Acquire(ctx, []booking.SlotKey{c})
		require.NoError(t, err)
		assert.Empty(t, held)
		releaseC()

		release()
		release()
		_, held, err = l.Acquire(ctx, []booking.SlotKey{a, b})
		require.NoError(t, err)
		assert.Empty(t, held)
	})

	t.Run("duplicate keys in one claim", func(t *testing.T) {
		l := cache.NewLocalSlotLocker()

		release, held, err := l.Acquire(ctx, []booking.SlotKey{a, a})
		require.NoError(t, err)
		assert.Empty(t, held)
		release()
	})

	t.Run("one winner among concurrent claims", func(t *testing.T) {
		l := cache.NewLocalSlotLocker()
		var wins atomic.Int32
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, held, err := l.Acquire(ctx, []booking.SlotKey{b, a})
				if err == nil && len(held) == 0 {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})
}
