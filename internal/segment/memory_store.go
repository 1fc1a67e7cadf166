package segment

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu     sync.RWMutex
	labels map[uint64]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		labels: make(map[uint64]string),
	}
}

func (s *MemoryStore) GetSegment(ctx context.Context, productID uint64) (string, bool, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	label, ok := s.labels[productID]
	return label, ok, nil
}

func (s *MemoryStore) UpsertSegment(ctx context.Context, productID uint64, label string) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.labels[productID] = label
	return nil
}
