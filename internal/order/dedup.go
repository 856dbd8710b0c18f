package order

import (
	"sync"
	"time"
)

// DefaultDedupTTL is how long a call id short-circuits repeated
// webhook deliveries.
const DefaultDedupTTL = 5 * time.Minute

// CallCache remembers recently persisted call ids. It is process-local
// and does not survive restarts; the repository existence check backs
// it for that case. Marking is separate from checking so a failed
// store write never poisons the cache.
type CallCache struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time
}

func NewCallCache(ttl time.Duration) *CallCache {
	if ttl <= 0 {
		ttl = DefaultDedupTTL
	}
	return &CallCache{
		ttl:  ttl,
		seen: make(map[string]time.Time),
	}
}

// Seen reports whether callID was marked within the TTL window.
// Expired entries are evicted lazily.
func (c *CallCache) Seen(callID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for id, at := range c.seen {
		if now.Sub(at) > c.ttl {
			delete(c.seen, id)
		}
	}

	_, ok := c.seen[callID]
	return ok
}

// Mark records callID. Call only after the record was persisted.
func (c *CallCache) Mark(callID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[callID] = time.Now()
}

// Reset clears the cache. Tests only.
func (c *CallCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = make(map[string]time.Time)
}
