package gqlclient

import (
	"encoding/json"

	gocache "github.com/patrickmn/go-cache"
)

// Cache stores raw response payloads keyed by operation.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) (json.RawMessage, bool)
	Set(key string, data json.RawMessage)
	Reset()
	Len() int
}

// InMemoryCache is a process-lifetime Cache. Entries never expire; they are
// dropped only by Reset.
type InMemoryCache struct {
	store *gocache.Cache
}

// NewInMemoryCache creates an empty cache.
func NewInMemoryCache() *InMemoryCache {
	// A zero cleanup interval keeps go-cache from starting its janitor goroutine.
	return &InMemoryCache{store: gocache.New(gocache.NoExpiration, 0)}
}

func (c *InMemoryCache) Get(key string) (json.RawMessage, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	data, ok := v.(json.RawMessage)
	return data, ok
}

func (c *InMemoryCache) Set(key string, data json.RawMessage) {
	// Copy so later decoding into the caller's buffer can't mutate the entry.
	stored := make(json.RawMessage, len(data))
	copy(stored, data)
	c.store.Set(key, stored, gocache.NoExpiration)
}

func (c *InMemoryCache) Reset() {
	c.store.Flush()
}

func (c *InMemoryCache) Len() int {
	return c.store.ItemCount()
}
