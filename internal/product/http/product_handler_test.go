package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/danilo/sellora-commerce/internal/product/domain"
	"github.com/danilo/sellora-commerce/internal/product/http/dto"
	"github.com/danilo/sellora-commerce/internal/product/usecase"
)

// MockProductUseCase is a mock implementation of usecase.UseCase
type MockProductUseCase struct {
	mock.Mock
}

func (m *MockProductUseCase) CreateProduct(
	ctx context.Context,
	input usecase.ProductInput,
) (*domain.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductUseCase) ListProducts(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductUseCase) GetProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductUseCase) UpdateProduct(
	ctx context.Context,
	id uuid.UUID,
	input usecase.ProductInput,
) (*domain.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductUseCase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// setupTestRouter wires the handler into a router so requests flow through
// gin the same way they do in production.
func setupTestRouter(t *testing.T) (*gin.Engine, *MockProductUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &MockProductUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewProductHandler(mockUseCase, logger)

	router := gin.New()
	products := router.Group("/api/products")
	products.GET("", handler.ListHandler)
	products.POST("", handler.CreateHandler)
	products.GET("/:id", handler.GetHandler)
	products.PUT("/:id", handler.UpdateHandler)
	products.DELETE("/:id", handler.DeleteHandler)

	return router, mockUseCase
}

// performRequest sends a request through the router. A string body is sent
// as-is, anything else is marshalled to JSON.
func performRequest(router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// matchProductInput compares the decoded input by value, since decimals with
// different exponents are equal without being deeply equal.
func matchProductInput(name, price string) any {
	return mock.MatchedBy(func(input usecase.ProductInput) bool {
		return input.Name == name &&
			input.Price != nil &&
			input.Price.Equal(decimal.RequireFromString(price))
	})
}

func TestProductHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockUseCase := setupTestRouter(t)

		price := decimal.RequireFromString("199.90")
		request := dto.ProductRequest{
			Name:  "Wireless Keyboard",
			Price: &price,
		}

		expected := &domain.Product{
			ID:    uuid.Must(uuid.NewV7()),
			Name:  "Wireless Keyboard",
			Price: price,
		}

		mockUseCase.On("CreateProduct", mock.Anything, matchProductInput("Wireless Keyboard", "199.90")).
			Return(expected, nil)

		w := performRequest(router, http.MethodPost, "/api/products", request)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ProductResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, expected.ID, response.ID)
		assert.True(t, response.Price.Equal(decimal.RequireFromString("199.90")))
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := performRequest(router, http.MethodPost, "/api/products", "{invalid")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockUseCase := setupTestRouter(t)

		product := &domain.Product{
			ID:    uuid.Must(uuid.NewV7()),
			Name:  "Wireless Keyboard",
			Price: decimal.RequireFromString("199.90"),
		}

		mockUseCase.On("GetProductByID", mock.Anything, product.ID).Return(product, nil)

		w := performRequest(router, http.MethodGet, "/api/products/"+product.ID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		router, mockUseCase := setupTestRouter(t)

		id := uuid.Must(uuid.NewV7())
		mockUseCase.On("GetProductByID", mock.Anything, id).Return(nil, domain.ErrProductNotFound)

		w := performRequest(router, http.MethodGet, "/api/products/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := performRequest(router, http.MethodGet, "/api/products/xyz", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_ListHandler(t *testing.T) {
	router, mockUseCase := setupTestRouter(t)

	products := []*domain.Product{
		{ID: uuid.Must(uuid.NewV7()), Name: "Product 1"},
		{ID: uuid.Must(uuid.NewV7()), Name: "Product 2"},
	}

	mockUseCase.On("ListProducts", mock.Anything, 10, 20).Return(products, nil)

	w := performRequest(router, http.MethodGet, "/api/products?offset=10&limit=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	mockUseCase.AssertExpectations(t)
}

func TestProductHandler_UpdateHandler(t *testing.T) {
	router, mockUseCase := setupTestRouter(t)

	id := uuid.Must(uuid.NewV7())
	price := decimal.RequireFromString("25.50")
	request := dto.ProductRequest{
		Name:  "Updated Name",
		Price: &price,
	}

	updated := &domain.Product{
		ID:    id,
		Name:  "Updated Name",
		Price: price,
	}

	mockUseCase.On("UpdateProduct", mock.Anything, id, matchProductInput("Updated Name", "25.50")).
		Return(updated, nil)

	w := performRequest(router, http.MethodPut, "/api/products/"+id.String(), request)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestProductHandler_DeleteHandler(t *testing.T) {
	router, mockUseCase := setupTestRouter(t)

	id := uuid.Must(uuid.NewV7())
	mockUseCase.On("DeleteProduct", mock.Anything, id).Return(nil)

	w := performRequest(router, http.MethodDelete, "/api/products/"+id.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}
