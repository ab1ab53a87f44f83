package kv

import (
	"context"

	cache "github.com/patrickmn/go-cache"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps blobs in process memory. It is the fallback backing
// when no persistent store is configured or reachable; contents are lost
// on restart.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	return v.([]byte), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	// Copy so later caller mutations don't leak into the store.
	buf := make([]byte, len(value))
	copy(buf, value)
	s.c.Set(key, buf, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.c.Delete(key)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.c.Flush()
	return nil
}
