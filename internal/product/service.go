package product

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"woz/internal/domain"
)

type productService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &productService{repo: repo}
}

func (s *productService) GetProductsByIDs(ctx context.Context, ids []int) ([]domain.Product, []int, error) {
	found, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[int]struct{}, len(found))
	for _, p := range found {
		foundSet[p.ID] = struct{}{}
	}

	var notFoundIDs []int
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}

func (s *productService) Filter(ctx context.Context, state domain.FilterState) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(products, state), nil
}

// Apply returns the products matching every active predicate of state,
// stably sorted by its sort mode. The input slice is never reordered and
// the result is always a new slice.
func Apply(products []domain.Product, state domain.FilterState) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(state.Search))

	visible := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if state.Matches(p, query) {
			visible = append(visible, p)
		}
	}

	slices.SortStableFunc(visible, comparator(state.Sort))
	return visible
}

func comparator(mode domain.SortMode) func(a, b domain.Product) int {
	switch mode {
	case domain.SortPriceLow:
		return func(a, b domain.Product) int { return cmp.Compare(a.PriceSuggested, b.PriceSuggested) }
	case domain.SortPriceHigh:
		return func(a, b domain.Product) int { return cmp.Compare(b.PriceSuggested, a.PriceSuggested) }
	case domain.SortRatingHigh:
		return func(a, b domain.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		// "relevance" is generation order.
		return func(a, b domain.Product) int { return cmp.Compare(a.ID, b.ID) }
	}
}
