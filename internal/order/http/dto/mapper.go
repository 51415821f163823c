// Package dto provides data transfer objects for the order HTTP layer.
package dto

import (
	"github.com/danilo/sellora-commerce/internal/order/domain"
	"github.com/danilo/sellora-commerce/internal/order/usecase"
)

// ToOrderInput converts an OrderRequest DTO to an OrderInput use case input
func ToOrderInput(req OrderRequest) usecase.OrderInput {
	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return usecase.OrderInput{
		UserID: req.UserID,
		Status: req.Status,
		Items:  items,
	}
}

// ToCreateOrderItemInput converts a CreateOrderItemRequest DTO to a use case input
func ToCreateOrderItemInput(req CreateOrderItemRequest) usecase.CreateOrderItemInput {
	return usecase.CreateOrderItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
}

// ToUpdateOrderItemInput converts an UpdateOrderItemRequest DTO to a use case input
func ToUpdateOrderItemInput(req UpdateOrderItemRequest) usecase.UpdateOrderItemInput {
	return usecase.UpdateOrderItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
}

// ToOrderItemResponse converts a domain OrderItem to a response DTO
func ToOrderItemResponse(item *domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal,
	}
}

// ToOrderItemResponseList converts a slice of domain order items to response DTOs
func ToOrderItemResponseList(items []*domain.OrderItem) []OrderItemResponse {
	responses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToOrderItemResponse(item))
	}
	return responses
}

// ToOrderResponse converts a domain Order to a response DTO with its items
func ToOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		items = append(items, ToOrderItemResponse(&order.Items[i]))
	}
	return OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		Items:       items,
		OrderDate:   order.OrderDate,
	}
}

// ToOrderResponseList converts a slice of domain orders to response DTOs
func ToOrderResponseList(orders []*domain.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ToOrderResponse(order))
	}
	return responses
}
