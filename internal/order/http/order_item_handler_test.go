package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/danilo/sellora-commerce/internal/order/domain"
	"github.com/danilo/sellora-commerce/internal/order/http/dto"
	"github.com/danilo/sellora-commerce/internal/order/usecase"
)

// MockOrderItemUseCase is a mock implementation of usecase.OrderItemUseCaseInterface
type MockOrderItemUseCase struct {
	mock.Mock
}

func (m *MockOrderItemUseCase) CreateOrderItem(
	ctx context.Context,
	input usecase.CreateOrderItemInput,
) (*domain.OrderItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemUseCase) ListOrderItems(
	ctx context.Context,
	offset, limit int,
) ([]*domain.OrderItem, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemUseCase) GetOrderItemByID(ctx context.Context, id uuid.UUID) (*domain.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemUseCase) UpdateOrderItem(
	ctx context.Context,
	id uuid.UUID,
	input usecase.UpdateOrderItemInput,
) (*domain.OrderItem, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemUseCase) DeleteOrderItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupOrderItemRouter(t *testing.T) (*gin.Engine, *MockOrderItemUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &MockOrderItemUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewOrderItemHandler(mockUseCase, logger)

	router := gin.New()
	items := router.Group("/api/order-items")
	items.GET("", handler.ListHandler)
	items.POST("", handler.CreateHandler)
	items.GET("/:id", handler.GetHandler)
	items.PUT("/:id", handler.UpdateHandler)
	items.DELETE("/:id", handler.DeleteHandler)

	return router, mockUseCase
}

func TestOrderItemHandler_CreateHandler(t *testing.T) {
	router, mockUseCase := setupOrderItemRouter(t)

	orderID := uuid.Must(uuid.NewV7())
	productID := uuid.Must(uuid.NewV7())
	request := dto.CreateOrderItemRequest{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  2,
	}

	expected := &domain.OrderItem{
		ID:        uuid.Must(uuid.NewV7()),
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  2,
		Subtotal:  decimal.RequireFromString("21.00"),
	}

	mockUseCase.On("CreateOrderItem", mock.Anything, dto.ToCreateOrderItemInput(request)).
		Return(expected, nil)

	w := performRequest(router, http.MethodPost, "/api/order-items", request)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.OrderItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, expected.ID, response.ID)
	assert.True(t, response.Subtotal.Equal(decimal.RequireFromString("21.00")))
	mockUseCase.AssertExpectations(t)
}

func TestOrderItemHandler_GetHandler_NotFound(t *testing.T) {
	router, mockUseCase := setupOrderItemRouter(t)

	id := uuid.Must(uuid.NewV7())
	mockUseCase.On("GetOrderItemByID", mock.Anything, id).Return(nil, domain.ErrOrderItemNotFound)

	w := performRequest(router, http.MethodGet, "/api/order-items/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestOrderItemHandler_ListHandler(t *testing.T) {
	router, mockUseCase := setupOrderItemRouter(t)

	items := []*domain.OrderItem{
		{ID: uuid.Must(uuid.NewV7())},
		{ID: uuid.Must(uuid.NewV7())},
	}

	mockUseCase.On("ListOrderItems", mock.Anything, 0, 50).Return(items, nil)

	w := performRequest(router, http.MethodGet, "/api/order-items", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.OrderItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	mockUseCase.AssertExpectations(t)
}

func TestOrderItemHandler_UpdateHandler(t *testing.T) {
	router, mockUseCase := setupOrderItemRouter(t)

	id := uuid.Must(uuid.NewV7())
	productID := uuid.Must(uuid.NewV7())
	request := dto.UpdateOrderItemRequest{ProductID: productID, Quantity: 3}

	updated := &domain.OrderItem{
		ID:        id,
		ProductID: productID,
		Quantity:  3,
		Subtotal:  decimal.RequireFromString("45.00"),
	}

	mockUseCase.On("UpdateOrderItem", mock.Anything, id, dto.ToUpdateOrderItemInput(request)).
		Return(updated, nil)

	w := performRequest(router, http.MethodPut, "/api/order-items/"+id.String(), request)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestOrderItemHandler_DeleteHandler(t *testing.T) {
	router, mockUseCase := setupOrderItemRouter(t)

	id := uuid.Must(uuid.NewV7())
	mockUseCase.On("DeleteOrderItem", mock.Anything, id).Return(nil)

	w := performRequest(router, http.MethodDelete, "/api/order-items/"+id.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}
