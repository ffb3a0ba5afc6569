package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/suncoast/diveshop/internal/adapter/httphandler"
	"github.com/suncoast/diveshop/internal/core/domain"
)

type MockCartManager struct {
	mock.Mock
}

func (m *MockCartManager) CreateCart(ctx context.Context) (domain.Cart, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartManager) GetCart(
	ctx context.Context, cartID string,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartManager) AddItem(
	ctx context.Context, cartID string, item domain.CartItem,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, item)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartManager) UpdateQuantity(
	ctx context.Context, cartID string,
	productID int64, variantID string, quantity int,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, productID, variantID, quantity)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartManager) RemoveItem(
	ctx context.Context, cartID string, productID int64, variantID string,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, productID, variantID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartManager) ClearCart(
	ctx context.Context, cartID string,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func cartMux(carts *MockCartManager) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterCart(mux, carts)
	return mux
}

func TestCartHandler(t *testing.T) {

	t.Run("PostCartCreated", func(t *testing.T) {
		carts := new(MockCartManager)
		carts.On("CreateCart", mock.Anything).Return(
			domain.Cart{ID: "cart-1"}, nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts", nil)
		rec := httptest.NewRecorder()
		cartMux(carts).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got httphandler.Cart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "cart-1", got.ID)
		assert.Empty(t, got.Items)
		assert.Zero(t, got.ItemCount)
	})

	t.Run("PostItemReturnsDerivedValues", func(t *testing.T) {
		item := domain.CartItem{
			ProductID: 7, VariantID: "blue",
			Name: "Dive Mask", VariantName: "Blue",
			UnitPrice: "$25.00", Quantity: 2,
		}
		carts := new(MockCartManager)
		carts.On("AddItem", mock.Anything, "cart-1", item).Return(
			domain.Cart{ID: "cart-1", Items: []domain.CartItem{item}}, nil,
		)

		body := `{
			"product_id": 7, "variant_id": "blue",
			"name": "Dive Mask", "variant_name": "Blue",
			"unit_price": "$25.00", "quantity": 2
		}`
		req := httptest.NewRequest(
			http.MethodPost, "/v1/carts/cart-1/items", strings.NewReader(body),
		)
		rec := httptest.NewRecorder()
		cartMux(carts).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got httphandler.Cart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 2, got.ItemCount)
		assert.InEpsilon(t, 50.0, got.Subtotal, 1e-9)
	})

	t.Run("PostItemInvalidJSON", func(t *testing.T) {
		carts := new(MockCartManager)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/carts/cart-1/items",
			strings.NewReader("{broken"),
		)
		rec := httptest.NewRecorder()
		cartMux(carts).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		carts.AssertNotCalled(t, "AddItem")
	})

	t.Run("PatchItemUpdatesQuantity", func(t *testing.T) {
		carts := new(MockCartManager)
		carts.On(
			"UpdateQuantity", mock.Anything, "cart-1", int64(7), "blue", 4,
		).Return(domain.Cart{ID: "cart-1"}, nil)

		body := `{"product_id": 7, "variant_id": "blue", "quantity": 4}`
		req := httptest.NewRequest(
			http.MethodPatch, "/v1/carts/cart-1/items", strings.NewReader(body),
		)
		rec := httptest.NewRecorder()
		cartMux(carts).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		carts.AssertExpectations(t)
	})

	t.Run("DeleteCartClears", func(t *testing.T) {
		carts := new(MockCartManager)
		carts.On("ClearCart", mock.Anything, "cart-1").Return(
			domain.Cart{ID: "cart-1"}, nil,
		)

		req := httptest.NewRequest(http.MethodDelete, "/v1/carts/cart-1", nil)
		rec := httptest.NewRecorder()
		cartMux(carts).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got httphandler.Cart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Empty(t, got.Items)
	})
}
