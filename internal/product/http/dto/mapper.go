// Package dto provides data transfer objects for the product HTTP layer.
package dto

import (
	"github.com/danilo/sellora-commerce/internal/product/domain"
	"github.com/danilo/sellora-commerce/internal/product/usecase"
)

// ToProductInput converts a ProductRequest DTO to a ProductInput use case input
func ToProductInput(req ProductRequest) usecase.ProductInput {
	return usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
}

// ToProductResponse converts a domain Product model to a ProductResponse DTO
func ToProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}

// ToProductResponseList converts a slice of domain products to response DTOs
func ToProductResponseList(products []*domain.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, ToProductResponse(product))
	}
	return responses
}
