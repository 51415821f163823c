// Package http provides HTTP handlers for product catalog operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danilo/sellora-commerce/internal/httputil"
	"github.com/danilo/sellora-commerce/internal/product/http/dto"
	"github.com/danilo/sellora-commerce/internal/product/usecase"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productUseCase usecase.UseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productUseCase usecase.UseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// CreateHandler creates a new product.
// POST /api/products - Returns 201 Created with the product representation.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	product, err := h.productUseCase.CreateProduct(c.Request.Context(), dto.ToProductInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// ListHandler lists products with offset/limit pagination.
// GET /api/products
func (h *ProductHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	products, err := h.productUseCase.ListProducts(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponseList(products))
}

// GetHandler retrieves a product by ID.
// GET /api/products/:id
func (h *ProductHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	product, err := h.productUseCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// UpdateHandler replaces every product field.
// PUT /api/products/:id
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	product, err := h.productUseCase.UpdateProduct(c.Request.Context(), id, dto.ToProductInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// DeleteHandler removes a product.
// DELETE /api/products/:id - Returns 204 No Content.
func (h *ProductHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.productUseCase.DeleteProduct(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
