// Package cache is a short-lived read-through accelerator for payment detail
// lookups. It is intentionally not persisted: the durable payments list is
// owned by the repository, and clearing the cache must never affect it.
package cache

import (
	"sync"
	"time"

	"payref-console/internal/domain/payment"
	"payref-console/internal/pkg/clock"
)

// DefaultTTL matches the upstream guidance for how long a detail response
// stays representative.
const DefaultTTL = 30 * time.Minute

type entry struct {
	record    payment.Record
	fetchedAt time.Time
}

type PaymentCache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	clock   clock.Clock
}

func NewPaymentCache(ttl time.Duration, clk clock.Clock) *PaymentCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PaymentCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clk,
	}
}

func key(reference, paymentID string) string {
	return reference + ":" + paymentID
}

// Get returns the cached record if it is younger than the TTL. Stale entries
// are dropped on read; there is no background eviction.
func (c *PaymentCache) Get(reference, paymentID string) (payment.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(reference, paymentID)
	e, ok := c.entries[k]
	if !ok {
		return payment.Record{}, false
	}
	if c.clock.Now().Sub(e.fetchedAt) >= c.ttl {
		delete(c.entries, k)
		return payment.Record{}, false
	}
	return e.record, true
}

// Put inserts or overwrites, stamping the current time.
func (c *PaymentCache) Put(reference, paymentID string, rec payment.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(reference, paymentID)] = entry{record: rec, fetchedAt: c.clock.Now()}
}

// Clear empties the cache unconditionally, forcing a full resync on the next
// reads.
func (c *PaymentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
