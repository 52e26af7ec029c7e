package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
)

// Store holds raw upstream payloads keyed by request URL.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a process-local TTL map. maxEntries <= 0 leaves it unbounded.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewMemoryStore(ttl time.Duration, maxEntries int) *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) {
	if key == "" {
		return
	}

	now := s.now()
	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.evictExpired(now)
		if len(s.entries) >= s.maxEntries {
			s.evictOne()
		}
	}
	s.entries[key] = entry{value: value, expiresAt: expiresAt}
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) evictExpired(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for key, e := range s.entries {
		if !e.expiresAt.After(now) {
			delete(s.entries, key)
		}
	}
}

// evictOne drops an arbitrary entry.
func (s *MemoryStore) evictOne() {
	for key := range s.entries {
		delete(s.entries, key)
		return
	}
}

// Loader fronts a Store and collapses concurrent misses for the same key.
type Loader struct {
	store  Store
	flight singleflight.Group
}

func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// GetOrLoad returns the cached value for key or calls load once per key,
// caching only successful loads. A nil store disables caching but keeps
// in-flight deduplication.
func (l *Loader) GetOrLoad(ctx context.Context, key string, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if load == nil {
		return nil, errors.New("loader is required")
	}
	if key == "" {
		return load(ctx)
	}

	if l.store != nil {
		if value, ok := l.store.Get(ctx, key); ok {
			return value, nil
		}
	}

	out, err, _ := l.flight.Do(key, func() (any, error) {
		if l.store != nil {
			if cached, ok := l.store.Get(ctx, key); ok {
				return cached, nil
			}
		}

		loaded, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		if l.store != nil {
			l.store.Set(ctx, key, loaded)
		}
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	value, ok := out.([]byte)
	if !ok {
		return nil, errors.Newf("unexpected cached value type %T", out)
	}
	return value, nil
}
