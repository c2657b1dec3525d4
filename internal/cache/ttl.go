package cache

import (
	"sync"
	"time"
)

// TTL is an in-process cache with lazy expiration on Get.
type TTL[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]entry[V]
	now  func() time.Time
}

type entry[V any] struct {
	val V
	exp time.Time
}

func NewTTL[K comparable, V any]() *TTL[K, V] {
	return &TTL[K, V]{data: make(map[K]entry[V]), now: time.Now}
}

// WithClock replaces the time source.
func (t *TTL[K, V]) WithClock(now func() time.Time) *TTL[K, V] {
	t.now = now
	return t
}

// Get returns the value and true if found and not expired; otherwise zero value and false.
func (t *TTL[K, V]) Get(k K) (V, bool) {
	t.mu.RLock()
	e, ok := t.data[k]
	t.mu.RUnlock()
	if !ok || !t.now().Before(e.exp) {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Set stores v for ttl. A non-positive ttl removes k.
func (t *TTL[K, V]) Set(k K, v V, ttl time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ttl <= 0 {
		delete(t.data, k)
		return
	}
	t.data[k] = entry[V]{val: v, exp: t.now().Add(ttl)}
}

func (t *TTL[K, V]) Delete(k K) {
	t.mu.Lock()
	delete(t.data, k)
	t.mu.Unlock()
}
