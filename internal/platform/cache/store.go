package cache

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru"
	"github.com/riskibarqy/fantasy-draft/internal/platform/resilience"
)

const defaultStoreSize = 1024

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a bounded read-through cache. Entries are evicted least recently
// used first and, when ttl is positive, expire after ttl.
type Store struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time
	flight  resilience.SingleFlight[any]
}

func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = defaultStoreSize
	}
	entries, _ := lru.New(size)
	return &Store{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	raw, ok := s.entries.Get(key)
	if !ok {
		return nil, false
	}
	e := raw.(entry)
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		s.entries.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries.Add(key, e)
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}
	s.entries.Remove(key)
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}
	for _, raw := range s.entries.Keys() {
		key, _ := raw.(string)
		if strings.HasPrefix(key, prefix) {
			s.entries.Remove(key)
		}
	}
}

func (s *Store) Len() int {
	return s.entries.Len()
}

// GetOrLoad returns the cached value or runs loader once for all concurrent
// callers of the same key. Loader errors are not cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, errors.New("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, _, err := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}
