package cache

import (
	"context"
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64 // Unix nanoseconds; zero = no expire
}

// MemoryCache is a process-local Cache backed by a mutex-guarded map with a
// background janitor sweeping expired entries.
type MemoryCache[V any] struct {
	mu    sync.RWMutex
	items map[string]item[V]
	quit  chan struct{}
}

// NewMemoryCache creates a memory cache with a 1s janitor interval.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithInterval[V](1 * time.Second)
}

// NewMemoryCacheWithInterval allows customizing the janitor interval.
func NewMemoryCacheWithInterval[V any](janitorInterval time.Duration) *MemoryCache[V] {
	mc := &MemoryCache[V]{
		items: make(map[string]item[V]),
		quit:  make(chan struct{}),
	}
	go mc.startJanitor(janitorInterval)
	return mc
}

// Stop terminates the janitor goroutine.
func (mc *MemoryCache[V]) Stop() {
	select {
	case <-mc.quit:
	default:
		close(mc.quit)
	}
}

func (mc *MemoryCache[V]) startJanitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			mc.sweep()
		case <-mc.quit:
			return
		}
	}
}

func (mc *MemoryCache[V]) sweep() {
	now := time.Now().UnixNano()
	mc.mu.Lock()
	for k, itm := range mc.items {
		if itm.expiration > 0 && now > itm.expiration {
			delete(mc.items, k)
		}
	}
	mc.mu.Unlock()
}

// Get takes the write lock so an expired entry can be removed in place.
func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	now := time.Now().UnixNano()

	mc.mu.Lock()
	defer mc.mu.Unlock()

	itm, ok := mc.items[key]
	if !ok {
		return zero, ErrCacheMiss
	}
	if itm.expiration > 0 && now > itm.expiration {
		delete(mc.items, key)
		return zero, ErrCacheMiss
	}
	return itm.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	mc.mu.Lock()
	mc.items[key] = item[V]{value: value, expiration: exp}
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.items, key)
	mc.mu.Unlock()
	return nil
}
