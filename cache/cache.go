package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	cache *cache.Cache
}

func New() *Cache {
	return NewWithTTL(5*time.Minute, 10*time.Minute)
}

// NewWithTTL builds a cache whose entries expire after defaultTTL and
// are swept every cleanupInterval.
func NewWithTTL(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		cache: cache.New(defaultTTL, cleanupInterval),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) {
	c.cache.Set(key, value, expiration)
}

func (c *Cache) SetDefault(key string, value interface{}) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Delete(key string) {
	c.cache.Delete(key)
}

// ItemCount includes entries that have expired but not yet been swept.
func (c *Cache) ItemCount() int {
	return c.cache.ItemCount()
}
