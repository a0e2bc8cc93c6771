// pkg/memcache/store.go
package mem

import (
	"sync"
	"time"
)

// Store is a TTL keyed store. Reads slide the expiry forward.
type Store[V any] interface {
	Set(key string, value V)
	Get(key string) (V, bool)
	Delete(key string) (V, bool)
	Len() int
	Sweep(now time.Time) int
	Range(fn func(key string, value V))
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLStore[V any] struct {
	mu      sync.RWMutex
	data    map[string]entry[V]
	ttl     time.Duration
	onEvict func(key string, value V)
	now     func() time.Time
}

// NewTTLStore builds a store whose entries live ttl after their last access.
// onEvict runs outside the lock for every entry dropped by Sweep.
func NewTTLStore[V any](ttl time.Duration, onEvict func(key string, value V)) *TTLStore[V] {
	return &TTLStore[V]{
		data:    make(map[string]entry[V]),
		ttl:     ttl,
		onEvict: onEvict,
		now:     time.Now,
	}
}

func (s *TTLStore[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{value: value, expiresAt: s.now().Add(s.ttl)}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.data[key]
	if !ok {
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		return zero, false
	}
	e.expiresAt = s.now().Add(s.ttl)
	s.data[key] = e
	return e.value, true
}

func (s *TTLStore[V]) Delete(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(s.data, key)
	return e.value, true
}

func (s *TTLStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Sweep removes expired entries and returns how many were dropped.
func (s *TTLStore[V]) Sweep(now time.Time) int {
	s.mu.Lock()
	expired := make(map[string]V)
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			expired[k] = e.value
			delete(s.data, k)
		}
	}
	s.mu.Unlock()

	if s.onEvict != nil {
		for k, v := range expired {
			s.onEvict(k, v)
		}
	}
	return len(expired)
}

func (s *TTLStore[V]) Range(fn func(key string, value V)) {
	s.mu.RLock()
	snapshot := make(map[string]V, len(s.data))
	for k, e := range s.data {
		snapshot[k] = e.value
	}
	s.mu.RUnlock()

	for k, v := range snapshot {
		fn(k, v)
	}
}
