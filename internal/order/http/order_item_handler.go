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

// OrderItemHandler handles item-level HTTP requests
type OrderItemHandler struct {
	itemUseCase usecase.OrderItemUseCaseInterface
	logger      *slog.Logger
}

// NewOrderItemHandler creates a new OrderItemHandler
func NewOrderItemHandler(
	itemUseCase usecase.OrderItemUseCaseInterface,
	logger *slog.Logger,
) *OrderItemHandler {
	return &OrderItemHandler{
		itemUseCase: itemUseCase,
		logger:      logger,
	}
}

// CreateHandler adds a line to an existing order.
// POST /api/order-items - Returns 201 Created with the priced item.
func (h *OrderItemHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	item, err := h.itemUseCase.CreateOrderItem(c.Request.Context(), dto.ToCreateOrderItemInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderItemResponse(item))
}

// ListHandler lists order items with offset/limit pagination.
// GET /api/order-items
func (h *OrderItemHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	items, err := h.itemUseCase.ListOrderItems(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderItemResponseList(items))
}

// GetHandler retrieves an order item by ID.
// GET /api/order-items/:id
func (h *OrderItemHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	item, err := h.itemUseCase.GetOrderItemByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderItemResponse(item))
}

// UpdateHandler reprices an order item and re-syncs the owning order total.
// PUT /api/order-items/:id
func (h *OrderItemHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	item, err := h.itemUseCase.UpdateOrderItem(c.Request.Context(), id, dto.ToUpdateOrderItemInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderItemResponse(item))
}

// DeleteHandler removes an order item and re-syncs the owning order total.
// DELETE /api/order-items/:id - Returns 204 No Content.
func (h *OrderItemHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.itemUseCase.DeleteOrderItem(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
