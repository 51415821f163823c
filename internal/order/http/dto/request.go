// Package dto provides data transfer objects for the order HTTP layer.
package dto

import "github.com/google/uuid"

// OrderItemPayload represents one product line on an order request.
// Subtotals are never accepted from clients.
type OrderItemPayload struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// OrderRequest represents the API request for order creation and update.
// On update the item list replaces the stored one entirely.
type OrderRequest struct {
	UserID uuid.UUID          `json:"user_id"`
	Status string             `json:"status"`
	Items  []OrderItemPayload `json:"items"`
}

// CreateOrderItemRequest represents the API request for adding a line to an
// existing order
type CreateOrderItemRequest struct {
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// UpdateOrderItemRequest represents the API request for updating an order item
type UpdateOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}
