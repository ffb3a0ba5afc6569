package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/suncoast/diveshop/internal/adapter/httphandler"
	"github.com/suncoast/diveshop/internal/core/domain"
)

type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) ListProducts(
	ctx context.Context, filter domain.CatalogFilter,
) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogProvider) GetProduct(
	ctx context.Context, productID int64,
) (domain.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogProvider) RelatedProducts(
	ctx context.Context, productID int64, limit int,
) ([]domain.Product, error) {
	args := m.Called(ctx, productID, limit)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogProvider) Facets(
	ctx context.Context,
) (domain.CatalogFacets, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CatalogFacets), args.Error(1)
}

func catalogMux(catalog *MockCatalogProvider) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, catalog)
	return mux
}

func TestCatalogHandler(t *testing.T) {

	t.Run("ListWithFilterParams", func(t *testing.T) {
		catalog := new(MockCatalogProvider)
		wantFilter := domain.CatalogFilter{
			Query:      "mask",
			Categories: []string{"Masks"},
			MaxPrice:   100,
			SortBy:     domain.SortPriceAsc,
		}
		catalog.On("ListProducts", mock.Anything, wantFilter).Return(
			[]domain.Product{{ID: 1, Name: "Dive Mask"}}, nil,
		)

		req := httptest.NewRequest(
			http.MethodGet,
			"/v1/products?q=mask&category=Masks&max_price=100&sort=price-asc",
			nil,
		)
		rec := httptest.NewRecorder()
		catalogMux(catalog).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []httphandler.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Dive Mask", got[0].Name)
	})

	t.Run("ListErrorDegradesToEmpty", func(t *testing.T) {
		catalog := new(MockCatalogProvider)
		catalog.On("ListProducts", mock.Anything, mock.Anything).Return(
			[]domain.Product(nil), errors.New("storage is down"),
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		rec := httptest.NewRecorder()
		catalogMux(catalog).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("GetProductNotFound", func(t *testing.T) {
		catalog := new(MockCatalogProvider)
		catalog.On("GetProduct", mock.Anything, int64(42)).Return(
			domain.Product{}, domain.ErrNotFound,
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/42", nil)
		rec := httptest.NewRecorder()
		catalogMux(catalog).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("GetProductInvalidID", func(t *testing.T) {
		catalog := new(MockCatalogProvider)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/abc", nil)
		rec := httptest.NewRecorder()
		catalogMux(catalog).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		catalog.AssertNotCalled(t, "GetProduct")
	})
}
