// Package usecase implements the order aggregate business logic. Every write
// runs inside a single transaction so the order row and its items commit or
// roll back together, keeping TotalAmount equal to the sum of item subtotals.
package usecase

import (
	"context"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/danilo/sellora-commerce/internal/database"
	"github.com/danilo/sellora-commerce/internal/order/domain"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
	productDomain "github.com/danilo/sellora-commerce/internal/product/domain"
	userDomain "github.com/danilo/sellora-commerce/internal/user/domain"
	appValidation "github.com/danilo/sellora-commerce/internal/validation"
)

// OrderItemInput contains the client-supplied fields of an order line.
// Subtotals are always derived server-side from the product price.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// OrderInput contains the input data for order creation and update.
// On update the item list is a full replacement: items omitted from the
// list are removed.
type OrderInput struct {
	UserID uuid.UUID        `json:"user_id"`
	Status string           `json:"status"`
	Items  []OrderItemInput `json:"items"`
}

// OrderUseCaseInterface defines the interface for order business logic operations
type OrderUseCaseInterface interface {
	CreateOrder(ctx context.Context, input OrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int) ([]*domain.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, input OrderInput) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

// OrderRepository interface defines order aggregate repository operations
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the user lookup needed to resolve order owners
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
}

// ProductRepository defines the product lookup needed to price order items
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*productDomain.Product, error)
}

// OrderUseCase handles order-related business logic
type OrderUseCase struct {
	txManager   database.TxManager
	orderRepo   OrderRepository
	userRepo    UserRepository
	productRepo ProductRepository
}

// NewOrderUseCase creates a new OrderUseCase
func NewOrderUseCase(
	txManager database.TxManager,
	orderRepo OrderRepository,
	userRepo UserRepository,
	productRepo ProductRepository,
) OrderUseCaseInterface {
	return &OrderUseCase{
		txManager:   txManager,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func (uc *OrderUseCase) validateOrderInput(input OrderInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.UserID,
			validation.By(validateRequiredUUID("user_id")),
		),
		validation.Field(&input.Status,
			validation.Required.Error("status is required"),
			validation.By(validateOrderStatus),
		),
		validation.Field(&input.Items,
			validation.By(validateOrderItems),
		),
	)
	return appValidation.WrapValidationError(err)
}

func validateRequiredUUID(field string) validation.RuleFunc {
	return func(value interface{}) error {
		id, _ := value.(uuid.UUID)
		if id == uuid.Nil {
			return apperrors.New(field + " is required")
		}
		return nil
	}
}

func validateOrderStatus(value interface{}) error {
	s, _ := value.(string)
	if !domain.OrderStatus(s).IsValid() {
		return apperrors.New("status must be PROCESSING, COMPLETED or CANCELLED")
	}
	return nil
}

// validateOrderItems fails fast on unpriceable lines instead of skipping them
func validateOrderItems(value interface{}) error {
	items, _ := value.([]OrderItemInput)
	for _, item := range items {
		if item.ProductID == uuid.Nil {
			return apperrors.New("every item requires a product_id")
		}
		if item.Quantity <= 0 {
			return apperrors.New("every item requires a positive quantity")
		}
	}
	return nil
}

// buildItems resolves each product and derives item subtotals for the order
func (uc *OrderUseCase) buildItems(
	ctx context.Context,
	orderID uuid.UUID,
	inputs []OrderItemInput,
) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		product, err := uc.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, apperrors.Wrapf(err, "resolve product %s", in.ProductID)
		}

		item := domain.OrderItem{
			ID:        uuid.Must(uuid.NewV7()),
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  in.Quantity,
		}
		item.ComputeSubtotal(product.Price)
		items = append(items, item)
	}
	return items, nil
}

// CreateOrder validates, prices and persists a new order with its items in
// one transaction
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input OrderInput) (*domain.Order, error) {
	// An absent status on create means the order is still being processed
	if input.Status == "" {
		input.Status = string(domain.OrderStatusProcessing)
	}

	if err := uc.validateOrderInput(input); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    input.UserID,
		Status:    domain.OrderStatus(input.Status),
		OrderDate: time.Now().UTC(),
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		// The owner must exist before the order references it
		if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
			return err
		}

		items, err := uc.buildItems(ctx, order.ID, input.Items)
		if err != nil {
			return err
		}
		order.Items = items
		order.RecalculateTotal()

		return uc.orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders retrieves orders with offset/limit pagination
func (uc *OrderUseCase) ListOrders(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	return uc.orderRepo.List(ctx, offset, limit)
}

// GetOrderByID retrieves an order with its items
func (uc *OrderUseCase) GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// UpdateOrder replaces the order's owner, status and full item set in one
// transaction. Items missing from the input are removed from storage.
func (uc *OrderUseCase) UpdateOrder(
	ctx context.Context,
	id uuid.UUID,
	input OrderInput,
) (*domain.Order, error) {
	if err := uc.validateOrderInput(input); err != nil {
		return nil, err
	}

	var order *domain.Order

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := uc.orderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
			return err
		}

		items, err := uc.buildItems(ctx, existing.ID, input.Items)
		if err != nil {
			return err
		}

		existing.UserID = input.UserID
		existing.Status = domain.OrderStatus(input.Status)
		existing.Items = items
		existing.RecalculateTotal()

		if err := uc.orderRepo.Update(ctx, existing); err != nil {
			return err
		}

		order = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// DeleteOrder removes an order and, by cascade, its items
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.orderRepo.Delete(ctx, id)
	})
}
