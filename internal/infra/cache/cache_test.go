//go:build unit

package cache_test

import (
	"testing"
	"time"

	"payref-console/internal/infra/cache"
	"payref-console/internal/pkg/clock"
	"payref-console/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, ttl time.Duration) (*cache.PaymentCache, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	return cache.NewPaymentCache(ttl, clk), clk
}

func TestPaymentCache(t *testing.T) {
	rec := builder.NewPaymentBuilder().BuildRecord()

	t.Run("miss on empty cache", func(t *testing.T) {
		c, _ := newCache(t, cache.DefaultTTL)
		_, ok := c.Get(rec.Reference, rec.PaymentID)
		assert.False(t, ok)
	})

	t.Run("hit while entry is younger than the TTL", func(t *testing.T) {
		c, clk := newCache(t, cache.DefaultTTL)
		c.Put(rec.Reference, rec.PaymentID, rec)

		clk.Advance(cache.DefaultTTL - time.Second)

		got, ok := c.Get(rec.Reference, rec.PaymentID)
		require.True(t, ok)
		assert.Equal(t, rec, got)
	})

	t.Run("entry at exactly the TTL is stale", func(t *testing.T) {
		c, clk := newCache(t, cache.DefaultTTL)
		c.Put(rec.Reference, rec.PaymentID, rec)

		clk.Advance(cache.DefaultTTL)

		_, ok := c.Get(rec.Reference, rec.PaymentID)
		assert.False(t, ok)
	})

	t.Run("stale entry is dropped on read", func(t *testing.T) {
		c, clk := newCache(t, cache.DefaultTTL)
		c.Put(rec.Reference, rec.PaymentID, rec)

		clk.Advance(cache.DefaultTTL + time.Minute)
		_, ok := c.Get(rec.Reference, rec.PaymentID)
		require.False(t, ok)

		// Rewinding the clock must not resurrect the entry.
		clk.Advance(-2 * time.Minute)
		_, ok = c.Get(rec.Reference, rec.PaymentID)
		assert.False(t, ok)
	})

	t.Run("put refreshes the entry's age", func(t *testing.T) {
		c, clk := newCache(t, cache.DefaultTTL)
		c.Put(rec.Reference, rec.PaymentID, rec)

		clk.Advance(20 * time.Minute)
		c.Put(rec.Reference, rec.PaymentID, rec)

		clk.Advance(20 * time.Minute)
		_, ok := c.Get(rec.Reference, rec.PaymentID)
		assert.True(t, ok)
	})

	t.Run("entries are keyed by reference and payment id together", func(t *testing.T) {
		c, _ := newCache(t, cache.DefaultTTL)
		c.Put(rec.Reference, rec.PaymentID, rec)

		_, ok := c.Get(rec.Reference, "other-payment")
		assert.False(t, ok)
	})

	t.Run("clear empties everything", func(t *testing.T) {
		c, _ := newCache(t, cache.DefaultTTL)
		other := builder.NewPaymentBuilder().BuildRecord()
		other.PaymentID = "pay-002"

		c.Put(rec.Reference, rec.PaymentID, rec)
		c.Put(other.Reference, other.PaymentID, other)
		c.Clear()

		_, ok := c.Get(rec.Reference, rec.PaymentID)
		assert.False(t, ok)
		_, ok = c.Get(other.Reference, other.PaymentID)
		assert.False(t, ok)

		// Clearing an already empty cache is fine.
		c.Clear()
	})

	t.Run("non-positive TTL falls back to the default", func(t *testing.T) {
		c, clk := newCache(t, 0)
		c.Put(rec.Reference, rec.PaymentID, rec)

		clk.Advance(cache.DefaultTTL - time.Second)
		_, ok := c.Get(rec.Reference, rec.PaymentID)
		assert.True(t, ok)
	})
}
