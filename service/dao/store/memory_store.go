// Package store provides a generic in-memory dao.Service implementation so
// concrete stores do not rewrite identical map-plus-mutex plumbing per
// record type.
package store

import (
	"context"
	"sync"

	"github.com/rotkonetworks/prax/service/dao"
)

// MemoryStore keeps records of type *T mapped by a comparable key K obtained
// from the supplied keySelector. Save and Load exchange copies of the record
// so callers mutating a returned value cannot race the store.
type MemoryStore[K comparable, T any] struct {
	mu          sync.RWMutex
	records     map[K]T
	keySelector func(*T) K
}

// NewMemoryStore creates a MemoryStore; keySelector extracts the record key
// (usually the ID field, or a fixed key for singleton records).
func NewMemoryStore[K comparable, T any](keySelector func(*T) K) *MemoryStore[K, T] {
	return &MemoryStore[K, T]{
		records:     make(map[K]T),
		keySelector: keySelector,
	}
}

// Save stores a copy of v, replacing any previous record wholesale.
func (s *MemoryStore[K, T]) Save(_ context.Context, v *T) error {
	if v == nil {
		return dao.ErrNilEntity
	}
	key := s.keySelector(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = *v
	return nil
}

// Load returns a copy of the record for key, or dao.ErrNotFound.
func (s *MemoryStore[K, T]) Load(_ context.Context, key K) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, dao.ErrNotFound
	}
	ret := v
	return &ret, nil
}

// Delete removes the record for key; deleting an absent key is a no-op.
func (s *MemoryStore[K, T]) Delete(_ context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}

// List returns copies of all stored records.
func (s *MemoryStore[K, T]) List(_ context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.records))
	for _, v := range s.records {
		ret := v
		out = append(out, &ret)
	}
	return out, nil
}

var _ dao.Service[string, any] = (*MemoryStore[string, any])(nil)
