package product

import (
	"context"

	"woz/internal/domain"
	"woz/internal/render"
)

type searchUseCase struct {
	service Service
}

func NewSearchUseCase(service Service) SearchUseCase {
	return &searchUseCase{service: service}
}

func (uc *searchUseCase) SearchProducts(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error) {
	found, notFoundIDs, err := uc.service.GetProductsByIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, err
	}

	if notFoundIDs == nil {
		notFoundIDs = []int{}
	}

	return &SearchProductsResponse{
		Products: toDTOs(found),
		NotFound: notFoundIDs,
	}, nil
}

// ListProducts filters the catalog with state and returns one page of the
// result starting at cursor.
func (uc *searchUseCase) ListProducts(ctx context.Context, state domain.FilterState, cursor, limit int) (*ListProductsResponse, error) {
	visible, err := uc.service.Filter(ctx, state)
	if err != nil {
		return nil, err
	}

	page, next := render.Batch(visible, cursor, limit)

	return &ListProductsResponse{
		Products:   toDTOs(page),
		Total:      len(visible),
		NextCursor: next,
		HasMore:    next < len(visible),
	}, nil
}

func toDTOs(products []domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductDTO{
			ID:                p.ID,
			Title:             p.Title,
			Provider:          p.Provider,
			ProviderVerified:  p.ProviderVerified,
			ProviderCountry:   string(p.ProviderCountry),
			PriceProvider:     p.PriceProvider,
			PriceSuggested:    p.PriceSuggested,
			Rating:            p.Rating,
			Reviews:           p.Reviews,
			Droppers:          p.Droppers,
			HighProfitability: p.HighProfitability(),
		})
	}
	return out
}
