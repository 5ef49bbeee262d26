package catalog

import (
	"slices"
	"sync"

	"woz/internal/domain"
)

// Store owns the product set for the lifetime of the process. Readers get
// copies; the animator mutates droppers through Walk while holding the lock.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[int]int
}

func NewStore(products []domain.Product) *Store {
	index := make(map[int]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}
	return &Store{
		products: slices.Clone(products),
		index:    index,
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Snapshot returns a copy of every product in generation order.
func (s *Store) Snapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// FindByIDs returns the products matching ids in request order, skipping
// unknown ids.
func (s *Store) FindByIDs(ids []int) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if i, ok := s.index[id]; ok {
			found = append(found, s.products[i])
		}
	}
	return found
}

func (s *Store) Droppers(id int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return 0, false
	}
	return s.products[i].Droppers, true
}

// Providers returns the distinct provider names in the set, sorted.
func (s *Store) Providers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := make(map[string]struct{})
	for _, p := range s.products {
		set[p.Provider] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Walk calls fn for every product under the write lock and returns the sum
// of droppers after the walk.
func (s *Store) Walk(fn func(p *domain.Product)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for i := range s.products {
		fn(&s.products[i])
		total += s.products[i].Droppers
	}
	return total
}

func (s *Store) TotalDroppers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, p := range s.products {
		total += p.Droppers
	}
	return total
}
