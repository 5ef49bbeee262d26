package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woz/internal/domain"
	"woz/internal/testutil"
)

type mockService struct {
	GetProductsByIDsFunc func(ctx context.Context, ids []int) ([]domain.Product, []int, error)
	FilterFunc           func(ctx context.Context, state domain.FilterState) ([]domain.Product, error)
}

func (m *mockService) GetProductsByIDs(ctx context.Context, ids []int) ([]domain.Product, []int, error) {
	return m.GetProductsByIDsFunc(ctx, ids)
}

func (m *mockService) Filter(ctx context.Context, state domain.FilterState) ([]domain.Product, error) {
	return m.FilterFunc(ctx, state)
}

func TestSearchProducts_MapsProducts(t *testing.T) {
	svc := &mockService{
		GetProductsByIDsFunc: func(ctx context.Context, ids []int) ([]domain.Product, []int, error) {
			return testutil.Products(2), nil, nil
		},
	}

	resp, err := NewSearchUseCase(svc).SearchProducts(context.Background(), SearchProductsRequest{ProductIDs: []int{1, 2}})
	require.NoError(t, err)

	require.Len(t, resp.Products, 2)
	assert.Equal(t, 1, resp.Products[0].ID)
	assert.Equal(t, "nacional", resp.Products[0].ProviderCountry)
	assert.Equal(t, "internacional", resp.Products[1].ProviderCountry)
	assert.NotNil(t, resp.NotFound)
	assert.Empty(t, resp.NotFound)
}

func TestSearchProducts_HighProfitability(t *testing.T) {
	svc := &mockService{
		GetProductsByIDsFunc: func(ctx context.Context, ids []int) ([]domain.Product, []int, error) {
			return []domain.Product{
				{ID: 1, PriceProvider: 100000, PriceSuggested: 190000},
				{ID: 2, PriceProvider: 100000, PriceSuggested: 180000},
			}, []int{3}, nil
		},
	}

	resp, err := NewSearchUseCase(svc).SearchProducts(context.Background(), SearchProductsRequest{ProductIDs: []int{1, 2, 3}})
	require.NoError(t, err)

	assert.True(t, resp.Products[0].HighProfitability)
	assert.False(t, resp.Products[1].HighProfitability)
	assert.Equal(t, []int{3}, resp.NotFound)
}

func TestSearchProducts_ServiceError(t *testing.T) {
	svc := &mockService{
		GetProductsByIDsFunc: func(ctx context.Context, ids []int) ([]domain.Product, []int, error) {
			return nil, nil, errors.New("boom")
		},
	}

	resp, err := NewSearchUseCase(svc).SearchProducts(context.Background(), SearchProductsRequest{ProductIDs: []int{1}})
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestListProducts_Pages(t *testing.T) {
	svc := &mockService{
		FilterFunc: func(ctx context.Context, state domain.FilterState) ([]domain.Product, error) {
			return testutil.Products(45), nil
		},
	}
	uc := NewSearchUseCase(svc)

	first, err := uc.ListProducts(context.Background(), domain.DefaultFilterState(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, first.Products, 20)
	assert.Equal(t, 45, first.Total)
	assert.Equal(t, 20, first.NextCursor)
	assert.True(t, first.HasMore)

	last, err := uc.ListProducts(context.Background(), domain.DefaultFilterState(), 40, 20)
	require.NoError(t, err)
	assert.Len(t, last.Products, 5)
	assert.Equal(t, 45, last.NextCursor)
	assert.False(t, last.HasMore)

	past, err := uc.ListProducts(context.Background(), domain.DefaultFilterState(), 100, 20)
	require.NoError(t, err)
	assert.NotNil(t, past.Products)
	assert.Empty(t, past.Products)
	assert.False(t, past.HasMore)
}

func TestListProducts_PassesState(t *testing.T) {
	var got domain.FilterState
	svc := &mockService{
		FilterFunc: func(ctx context.Context, state domain.FilterState) ([]domain.Product, error) {
			got = state
			return nil, nil
		},
	}
	state := domain.DefaultFilterState()
	state.Search = "mochila"

	resp, err := NewSearchUseCase(svc).ListProducts(context.Background(), state, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "mochila", got.Search)
	assert.Equal(t, 0, resp.Total)
}
