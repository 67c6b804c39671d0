package views

import (
	"hash/fnv"
	"time"

	cache "github.com/SporkHubr/echo-http-cache"
	"github.com/SporkHubr/echo-http-cache/adapter/memory"
)

// Cache holds rendered list views keyed by route path. Mutation handlers
// release the invoice list entry so the next read rebuilds it from the
// database.
type Cache struct {
	adapter cache.Adapter
	ttl     time.Duration
}

func NewCache(capacity int, ttl time.Duration) (*Cache, error) {
	adapter, err := memory.NewAdapter(
		memory.AdapterWithAlgorithm(memory.LRU),
		memory.AdapterWithCapacity(capacity),
	)
	if err != nil {
		return nil, err
	}
	return &Cache{
		adapter: adapter,
		ttl:     ttl,
	}, nil
}

func (c *Cache) Get(route string) ([]byte, bool) {
	key := generateKey(route)
	b, ok := c.adapter.Get(key)
	if !ok {
		return nil, false
	}
	response := cache.BytesToResponse(b)
	if response.Expiration.Before(time.Now()) {
		c.adapter.Release(key)
		return nil, false
	}
	return response.Value, true
}

func (c *Cache) Set(route string, body []byte) {
	response := cache.Response{
		Value:      body,
		Expiration: time.Now().Add(c.ttl),
	}
	c.adapter.Set(generateKey(route), response.Bytes(), response.Expiration)
}

// Invalidate drops the cached view for the given route.
func (c *Cache) Invalidate(route string) {
	c.adapter.Release(generateKey(route))
}

func generateKey(route string) uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(route))
	return hash.Sum64()
}
