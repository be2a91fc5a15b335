package cache

import (
	"sync"
	"time"
)

// Cache is a typed TTL cache. The in-memory implementation is the only one today.
type Cache[V any] interface {
	// Get returns the value and true when the key is present and not expired
	Get(key string) (V, bool)

	Set(key string, value V, ttl time.Duration)

	// GetOrSet returns the cached value or computes, stores and returns it.
	// compute runs at most once per miss; concurrent callers wait for it.
	GetOrSet(key string, ttl time.Duration, compute func() (V, error)) (V, error)

	Delete(key string)

	Clear()

	// Len counts live entries only
	Len() int

	Stop()
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func (e entry[V]) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// InMemoryCache is a mutex guarded map with a background sweeper
type InMemoryCache[V any] struct {
	mu       sync.RWMutex
	items    map[string]entry[V]
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewInMemoryCache starts a cache whose expired entries are swept every cleanupInterval
func NewInMemoryCache[V any](cleanupInterval time.Duration) *InMemoryCache[V] {
	c := &InMemoryCache[V]{
		items:    make(map[string]entry[V]),
		interval: cleanupInterval,
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	go c.sweep()
	return c
}

func (c *InMemoryCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	e, ok := c.items[key]
	if !ok || e.expired(c.now()) {
		return zero, false
	}
	return e.value, true
}

func (c *InMemoryCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
}

func (c *InMemoryCache[V]) GetOrSet(key string, ttl time.Duration, compute func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another caller may have filled it while we waited for the lock
	if e, ok := c.items[key]; ok && !e.expired(c.now()) {
		return e.value, nil
	}

	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	c.items[key] = entry[V]{value: v, expiresAt: c.now().Add(ttl)}
	return v, nil
}

func (c *InMemoryCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

func (c *InMemoryCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]entry[V])
}

func (c *InMemoryCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	n := 0
	for _, e := range c.items {
		if !e.expired(now) {
			n++
		}
	}
	return n
}

// Stop ends the sweeper; safe to call more than once
func (c *InMemoryCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *InMemoryCache[V]) sweep() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *InMemoryCache[V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.items {
		if e.expired(now) {
			delete(c.items, key)
		}
	}
}
