// Package usecase implements the product catalog business logic.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/danilo/sellora-commerce/internal/product/domain"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
	appValidation "github.com/danilo/sellora-commerce/internal/validation"
)

// ProductInput contains the input data for product creation and update.
// Updates replace every field, so the same shape serves both operations.
type ProductInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    string           `json:"image_url"`
}

// UseCase defines the interface for product business logic operations
type UseCase interface {
	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context, offset, limit int) ([]*domain.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// ProductRepository interface defines product repository operations
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductUseCase handles product-related business logic
type ProductUseCase struct {
	productRepo ProductRepository
}

// NewProductUseCase creates a new ProductUseCase
func NewProductUseCase(productRepo ProductRepository) UseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

func (uc *ProductUseCase) validateProductInput(input ProductInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Description,
			validation.Length(0, 1000).Error("description must be at most 1000 characters"),
		),
		validation.Field(&input.Price,
			validation.NotNil.Error("price is required"),
			validation.By(validatePrice),
		),
		validation.Field(&input.ImageURL,
			validation.Length(0, 500).Error("image_url must be at most 500 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// validatePrice requires a non-negative amount with at most two fraction
// digits. An absent price is caught by NotNil before this runs; an explicit
// zero is a valid free product.
func validatePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return apperrors.New("price must be a decimal number")
	}
	if price.IsNegative() {
		return apperrors.New("price must not be negative")
	}
	if price.Exponent() < -2 {
		return apperrors.New("price must have at most two decimal places")
	}
	return nil
}

// CreateProduct creates a new product
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if err := uc.validateProductInput(input); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       *input.Price,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts retrieves products with offset/limit pagination
func (uc *ProductUseCase) ListProducts(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	return uc.productRepo.List(ctx, offset, limit)
}

// GetProductByID retrieves a product by ID
func (uc *ProductUseCase) GetProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// UpdateProduct replaces every product field with the given input
func (uc *ProductUseCase) UpdateProduct(
	ctx context.Context,
	id uuid.UUID,
	input ProductInput,
) (*domain.Product, error) {
	if err := uc.validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = *input.Price
	product.ImageURL = strings.TrimSpace(input.ImageURL)

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product by ID
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return uc.productRepo.Delete(ctx, id)
}
