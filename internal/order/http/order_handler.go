// Package http provides HTTP handlers for order and order item operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danilo/sellora-commerce/internal/httputil"
	"github.com/danilo/sellora-commerce/internal/order/http/dto"
	"github.com/danilo/sellora-commerce/internal/order/usecase"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderUseCase usecase.OrderUseCaseInterface
	logger       *slog.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderUseCase usecase.OrderUseCaseInterface, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

// CreateHandler creates a new order with its items.
// POST /api/orders - Returns 201 Created with the priced order.
func (h *OrderHandler) CreateHandler(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	order, err := h.orderUseCase.CreateOrder(c.Request.Context(), dto.ToOrderInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// ListHandler lists orders with offset/limit pagination.
// GET /api/orders
func (h *OrderHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	orders, err := h.orderUseCase.ListOrders(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponseList(orders))
}

// GetHandler retrieves an order with its items.
// GET /api/orders/:id
func (h *OrderHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	order, err := h.orderUseCase.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// UpdateHandler replaces the order's owner, status and full item set.
// PUT /api/orders/:id
func (h *OrderHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	order, err := h.orderUseCase.UpdateOrder(c.Request.Context(), id, dto.ToOrderInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// DeleteHandler removes an order and its items.
// DELETE /api/orders/:id - Returns 204 No Content.
func (h *OrderHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.orderUseCase.DeleteOrder(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
