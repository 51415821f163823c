// Package domain defines the order aggregate: an order owns its items and
// keeps TotalAmount equal to the sum of item subtotals after every mutation.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
)

// Order domain errors
var (
	ErrOrderNotFound     = apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	ErrOrderItemNotFound = apperrors.Wrap(apperrors.ErrNotFound, "order item not found")
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

// Order statuses. Transitions are unrestricted; values are only checked
// for enum membership.
const (
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// IsValid reports whether the status is a known enum member
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem represents a single product line inside an order.
// Subtotal is always derived from the product price, never client-supplied.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ComputeSubtotal derives the line subtotal from the product price and the
// item quantity using exact decimal arithmetic.
func (i *OrderItem) ComputeSubtotal(price decimal.Decimal) {
	i.Subtotal = price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the aggregate root. Items belong to exactly one order; removing
// an item from the list on update removes it from storage as well.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	Items       []OrderItem     `json:"items"`
	OrderDate   time.Time       `json:"order_date"`
}

// RecalculateTotal sets TotalAmount to the sum of item subtotals.
// An order without items totals zero.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal)
	}
	o.TotalAmount = total
}

// AddItem appends the item, sets its back-reference and keeps the total
// consistent.
func (o *Order) AddItem(item OrderItem) {
	item.OrderID = o.ID
	o.Items = append(o.Items, item)
	o.RecalculateTotal()
}
