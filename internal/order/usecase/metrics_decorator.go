package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danilo/sellora-commerce/internal/metrics"
	"github.com/danilo/sellora-commerce/internal/order/domain"
)

// orderUseCaseWithMetrics decorates the order use case with metrics
// instrumentation. Order writes are the hot path of the service, so they
// carry operation counters and durations.
type orderUseCaseWithMetrics struct {
	next    OrderUseCaseInterface
	metrics metrics.BusinessMetrics
}

// NewOrderUseCaseWithMetrics wraps an order use case with metrics recording.
func NewOrderUseCaseWithMetrics(useCase OrderUseCaseInterface, m metrics.BusinessMetrics) OrderUseCaseInterface {
	return &orderUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (o *orderUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "order", operation, status)
	o.metrics.RecordDuration(ctx, "order", operation, time.Since(start), status)
}

// CreateOrder records metrics for order creation operations.
func (o *orderUseCaseWithMetrics) CreateOrder(ctx context.Context, input OrderInput) (*domain.Order, error) {
	start := time.Now()
	order, err := o.next.CreateOrder(ctx, input)
	o.record(ctx, "order_create", start, err)
	return order, err
}

// ListOrders records metrics for order list operations.
func (o *orderUseCaseWithMetrics) ListOrders(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Order, error) {
	start := time.Now()
	orders, err := o.next.ListOrders(ctx, offset, limit)
	o.record(ctx, "order_list", start, err)
	return orders, err
}

// GetOrderByID records metrics for order retrieval operations.
func (o *orderUseCaseWithMetrics) GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	start := time.Now()
	order, err := o.next.GetOrderByID(ctx, id)
	o.record(ctx, "order_get", start, err)
	return order, err
}

// UpdateOrder records metrics for order update operations.
func (o *orderUseCaseWithMetrics) UpdateOrder(
	ctx context.Context,
	id uuid.UUID,
	input OrderInput,
) (*domain.Order, error) {
	start := time.Now()
	order, err := o.next.UpdateOrder(ctx, id, input)
	o.record(ctx, "order_update", start, err)
	return order, err
}

// DeleteOrder records metrics for order deletion operations.
func (o *orderUseCaseWithMetrics) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := o.next.DeleteOrder(ctx, id)
	o.record(ctx, "order_delete", start, err)
	return err
}
