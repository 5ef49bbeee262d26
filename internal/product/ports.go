package product

import (
	"context"

	"woz/internal/domain"
)

type SearchUseCase interface {
	SearchProducts(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error)
	ListProducts(ctx context.Context, state domain.FilterState, cursor, limit int) (*ListProductsResponse, error)
}

type Service interface {
	GetProductsByIDs(ctx context.Context, ids []int) (found []domain.Product, notFoundIDs []int, err error)
	Filter(ctx context.Context, state domain.FilterState) ([]domain.Product, error)
}

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error)
}
