package cache

import (
	"sync"
	"time"
)

type entry struct {
	value   []byte
	expires time.Time
}

// TTLCache is a small in-memory byte store with per-key expiry. It holds
// rendered pages keyed by fixture version so repeated requests skip the
// template pass. It is process-local.
type TTLCache struct {
	mu   sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewTTLCache() *TTLCache {
	return &TTLCache{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Get returns the value stored under key when it has not expired. Expired
// entries are pruned on access.
func (c *TTLCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.data[key]
	if !ok {
		return nil, false
	}

	if c.now().After(item.expires) {
		delete(c.data, key)

		return nil, false
	}

	return item.value, true
}

// Set stores a copy of value with a time-to-live.
func (c *TTLCache) Set(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = entry{
		value:   append([]byte(nil), value...),
		expires: c.now().Add(ttl),
	}
}

func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.data)
}
