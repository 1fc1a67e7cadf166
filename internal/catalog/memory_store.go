package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/gardenlawn/shopfeed/internal/domain"
)

type MemoryStore struct {
	mu sync.RWMutex

	products map[uint64]domain.Product // entity id -> record
	bySKU    map[string]uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[uint64]domain.Product),
		bySKU:    make(map[string]uint64),
	}
}

func (s *MemoryStore) UpsertProduct(ctx context.Context, p domain.Product) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.ID] = p
	s.bySKU[p.SKU] = p.ID
	return nil
}

func (s *MemoryStore) ListFeedEligibleProducts(ctx context.Context) ([]domain.Product, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if !p.FeedEligible() {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetProduct(ctx context.Context, sku string) (domain.Product, bool, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.bySKU[sku]
	if !ok {
		return domain.Product{}, false, nil
	}
	p, ok := s.products[id]
	return p, ok, nil
}
