package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"woz/internal/catalog"
	"woz/internal/domain"
	"woz/internal/dto"
	"woz/internal/testutil"
)

type mockSearchUseCase struct {
	SearchProductsFunc func(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error)
	ListProductsFunc   func(ctx context.Context, state domain.FilterState, cursor, limit int) (*ListProductsResponse, error)
}

func (m *mockSearchUseCase) SearchProducts(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error) {
	return m.SearchProductsFunc(ctx, req)
}

func (m *mockSearchUseCase) ListProducts(ctx context.Context, state domain.FilterState, cursor, limit int) (*ListProductsResponse, error) {
	return m.ListProductsFunc(ctx, state, cursor, limit)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleSearchProducts_Validation(t *testing.T) {
	tooMany := make([]string, 101)
	for i := range tooMany {
		tooMany[i] = "1"
	}

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"invalid json", `{`, "invalid JSON body"},
		{"empty ids", `{"productIds":[]}`, "productIds is required"},
		{"too many ids", `{"productIds":[` + strings.Join(tooMany, ",") + `]}`, "productIds exceeds maximum of 100"},
		{"non positive id", `{"productIds":[1,0]}`, "each productId must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewController(&mockSearchUseCase{}, zap.NewNop())
			req := httptest.NewRequest(http.MethodPost, "/v1/products/search", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			ctrl.HandleSearchProducts(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, dto.CodeValidation, resp.Code)
			assert.Equal(t, tt.message, resp.Message)
			assert.NotEmpty(t, resp.TraceID)
		})
	}
}

func TestHandleSearchProducts_Success(t *testing.T) {
	ctrl := NewModule(catalog.NewStore(testutil.Products(5)), zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/v1/products/search", strings.NewReader(`{"productIds":[2,99]}`))
	rec := httptest.NewRecorder()

	ctrl.HandleSearchProducts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp SearchProductsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, 2, resp.Products[0].ID)
	assert.Equal(t, []int{99}, resp.NotFound)
}

func TestHandleSearchProducts_UseCaseError(t *testing.T) {
	uc := &mockSearchUseCase{
		SearchProductsFunc: func(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error) {
			return nil, errors.New("boom")
		},
	}
	ctrl := NewController(uc, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/v1/products/search", strings.NewReader(`{"productIds":[1]}`))
	rec := httptest.NewRecorder()

	ctrl.HandleSearchProducts(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, dto.CodeInternal, decodeError(t, rec).Code)
}

func TestHandleListProducts_ReadsControlsFromQuery(t *testing.T) {
	ctrl := NewModule(catalog.NewStore(testutil.Products(30)), zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/v1/products?provider=Amazon&sort=price_high&limit=3&cursor=1", nil)
	rec := httptest.NewRecorder()

	ctrl.HandleListProducts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListProductsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 15, resp.Total)
	require.Len(t, resp.Products, 3)
	assert.Equal(t, []int{28, 26, 24}, []int{resp.Products[0].ID, resp.Products[1].ID, resp.Products[2].ID})
	assert.Equal(t, 4, resp.NextCursor)
	assert.True(t, resp.HasMore)
}

func TestHandleListProducts_MalformedControlsUseDefaults(t *testing.T) {
	ctrl := NewModule(catalog.NewStore(testutil.Products(5)), zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/v1/products?sort=weird&rating=abc", nil)
	rec := httptest.NewRecorder()

	ctrl.HandleListProducts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListProductsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 5, resp.Total)
}

func TestHandleListProducts_InvalidPaging(t *testing.T) {
	ctrl := NewController(&mockSearchUseCase{}, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/v1/products?cursor=-1&limit=500", nil)
	rec := httptest.NewRecorder()

	ctrl.HandleListProducts(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	require.Len(t, resp.Details, 2)
	assert.Equal(t, "cursor", resp.Details[0].Field)
	assert.Equal(t, "limit", resp.Details[1].Field)
}

func TestHandleListProducts_LimitBounds(t *testing.T) {
	ctrl := NewModule(catalog.NewStore(testutil.Products(150)), zap.NewNop())

	rec := httptest.NewRecorder()
	ctrl.HandleListProducts(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/products?limit=%d", maxPageSize), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListProductsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Products, maxPageSize)

	rec = httptest.NewRecorder()
	ctrl.HandleListProducts(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/products?limit=%d", maxPageSize+1), nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeError(t, rec)
	require.Len(t, errResp.Details, 1)
	assert.Equal(t, "limit must be between 1 and 100", errResp.Details[0].Message)
}
