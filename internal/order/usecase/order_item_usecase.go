package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/danilo/sellora-commerce/internal/database"
	"github.com/danilo/sellora-commerce/internal/order/domain"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
	appValidation "github.com/danilo/sellora-commerce/internal/validation"
)

// CreateOrderItemInput contains the input data for adding a line to an
// existing order
type CreateOrderItemInput struct {
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// UpdateOrderItemInput contains the mutable order item fields. The owning
// order cannot be changed through item-level edits.
type UpdateOrderItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// OrderItemUseCaseInterface defines the interface for item-level operations
type OrderItemUseCaseInterface interface {
	CreateOrderItem(ctx context.Context, input CreateOrderItemInput) (*domain.OrderItem, error)
	ListOrderItems(ctx context.Context, offset, limit int) ([]*domain.OrderItem, error)
	GetOrderItemByID(ctx context.Context, id uuid.UUID) (*domain.OrderItem, error)
	UpdateOrderItem(ctx context.Context, id uuid.UUID, input UpdateOrderItemInput) (*domain.OrderItem, error)
	DeleteOrderItem(ctx context.Context, id uuid.UUID) error
}

// OrderItemRepository interface defines item-level repository operations
type OrderItemRepository interface {
	Create(ctx context.Context, item *domain.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderItem, error)
	List(ctx context.Context, offset, limit int) ([]*domain.OrderItem, error)
	ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]*domain.OrderItem, error)
	Update(ctx context.Context, item *domain.OrderItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderTotalWriter rewrites an order's derived total after item-level edits
type OrderTotalWriter interface {
	OrderRepository
	UpdateTotalAmount(ctx context.Context, id uuid.UUID, total decimal.Decimal) error
}

// OrderItemUseCase handles item-level business logic. Every write re-syncs
// the owning order's total in the same transaction so the aggregate
// invariant survives item-level edits.
type OrderItemUseCase struct {
	txManager   database.TxManager
	itemRepo    OrderItemRepository
	orderRepo   OrderTotalWriter
	productRepo ProductRepository
}

// NewOrderItemUseCase creates a new OrderItemUseCase
func NewOrderItemUseCase(
	txManager database.TxManager,
	itemRepo OrderItemRepository,
	orderRepo OrderTotalWriter,
	productRepo ProductRepository,
) OrderItemUseCaseInterface {
	return &OrderItemUseCase{
		txManager:   txManager,
		itemRepo:    itemRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func validateItemFields(productID uuid.UUID, quantity int) error {
	if productID == uuid.Nil {
		return appValidation.WrapValidationError(apperrors.New("product_id is required"))
	}
	if quantity <= 0 {
		return appValidation.WrapValidationError(apperrors.New("quantity must be positive"))
	}
	return nil
}

// resyncOrderTotal recomputes the owning order's total from its current
// item rows and persists it
func (uc *OrderItemUseCase) resyncOrderTotal(ctx context.Context, orderID uuid.UUID) error {
	items, err := uc.itemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	order := domain.Order{ID: orderID, Items: make([]domain.OrderItem, 0, len(items))}
	for _, item := range items {
		order.Items = append(order.Items, *item)
	}
	order.RecalculateTotal()

	return uc.orderRepo.UpdateTotalAmount(ctx, orderID, order.TotalAmount)
}

// CreateOrderItem adds a line to an existing order and re-syncs the total
func (uc *OrderItemUseCase) CreateOrderItem(
	ctx context.Context,
	input CreateOrderItemInput,
) (*domain.OrderItem, error) {
	if input.OrderID == uuid.Nil {
		return nil, appValidation.WrapValidationError(apperrors.New("order_id is required"))
	}
	if err := validateItemFields(input.ProductID, input.Quantity); err != nil {
		return nil, err
	}

	item := &domain.OrderItem{
		ID:        uuid.Must(uuid.NewV7()),
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := uc.orderRepo.GetByID(ctx, input.OrderID); err != nil {
			return err
		}

		product, err := uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return apperrors.Wrapf(err, "resolve product %s", input.ProductID)
		}
		item.ComputeSubtotal(product.Price)

		if err := uc.itemRepo.Create(ctx, item); err != nil {
			return err
		}

		return uc.resyncOrderTotal(ctx, input.OrderID)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListOrderItems retrieves order items with offset/limit pagination
func (uc *OrderItemUseCase) ListOrderItems(
	ctx context.Context,
	offset, limit int,
) ([]*domain.OrderItem, error) {
	return uc.itemRepo.List(ctx, offset, limit)
}

// GetOrderItemByID retrieves an order item by ID
func (uc *OrderItemUseCase) GetOrderItemByID(ctx context.Context, id uuid.UUID) (*domain.OrderItem, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// UpdateOrderItem reprices the line against the (possibly new) product and
// re-syncs the owning order's total in the same transaction
func (uc *OrderItemUseCase) UpdateOrderItem(
	ctx context.Context,
	id uuid.UUID,
	input UpdateOrderItemInput,
) (*domain.OrderItem, error) {
	if err := validateItemFields(input.ProductID, input.Quantity); err != nil {
		return nil, err
	}

	var item *domain.OrderItem

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := uc.itemRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		product, err := uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return apperrors.Wrapf(err, "resolve product %s", input.ProductID)
		}

		existing.ProductID = product.ID
		existing.Quantity = input.Quantity
		existing.ComputeSubtotal(product.Price)

		if err := uc.itemRepo.Update(ctx, existing); err != nil {
			return err
		}

		if err := uc.resyncOrderTotal(ctx, existing.OrderID); err != nil {
			return err
		}

		item = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteOrderItem removes a line and re-syncs the owning order's total
func (uc *OrderItemUseCase) DeleteOrderItem(ctx context.Context, id uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := uc.itemRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := uc.itemRepo.Delete(ctx, id); err != nil {
			return err
		}

		return uc.resyncOrderTotal(ctx, existing.OrderID)
	})
}
