// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/go-pwdhash"
	"github.com/google/uuid"

	"github.com/danilo/sellora-commerce/internal/user/domain"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
	appValidation "github.com/danilo/sellora-commerce/internal/validation"
)

// CreateUserInput contains the input data for user creation
type CreateUserInput struct {
	FullName string         `json:"full_name"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Phone    string         `json:"phone"`
	UserType string         `json:"user_type"`
	Document string         `json:"document"`
	Address  domain.Address `json:"address"`
}

// UpdateUserInput contains the mutable user fields
type UpdateUserInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByDocument(ctx context.Context, document string) (*domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByDocument(ctx context.Context, document string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo       UserRepository
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(userRepo UserRepository) (UseCase, error) {
	// Interactive policy keeps hashing latency acceptable for request-path registration
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
	}, nil
}

func (uc *UserUseCase) validateCreateUserInput(input CreateUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.FullName,
			validation.Required.Error("full_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("full_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(3, 50).Error("username must be between 3 and 50 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
		),
		validation.Field(&input.Phone,
			validation.Required.Error("phone is required"),
			appValidation.NotBlank,
			validation.Length(8, 20).Error("phone must be between 8 and 20 characters"),
		),
		validation.Field(&input.UserType,
			validation.Required.Error("user_type is required"),
			validation.By(validateUserType),
		),
		validation.Field(&input.Document,
			validation.Required.Error("document is required"),
			appValidation.Document,
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *UserUseCase) validateUpdateUserInput(input UpdateUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.FullName,
			validation.Required.Error("full_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("full_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Phone,
			validation.Required.Error("phone is required"),
			appValidation.NotBlank,
			validation.Length(8, 20).Error("phone must be between 8 and 20 characters"),
		),
		validation.Field(&input.UserType,
			validation.Required.Error("user_type is required"),
			validation.By(validateUserType),
		),
	)
	return appValidation.WrapValidationError(err)
}

func validateUserType(value interface{}) error {
	s, _ := value.(string)
	if !domain.UserType(s).IsValid() {
		return apperrors.New("user_type must be CUSTOMER or ADMIN")
	}
	return nil
}

// CreateUser creates a new user with a hashed password and normalized document
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := uc.validateCreateUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		FullName:  strings.TrimSpace(input.FullName),
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.TrimSpace(strings.ToLower(input.Email)),
		Password:  hashedPassword,
		Phone:     strings.TrimSpace(input.Phone),
		UserType:  domain.UserType(input.UserType),
		Address:   input.Address,
		Status:    true,
		CreatedAt: time.Now().UTC(),
	}
	user.SetDocument(input.Document)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers retrieves users with offset/limit pagination
func (uc *UserUseCase) ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// GetUserByID retrieves a user by ID
func (uc *UserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// GetUserByUsername retrieves a user by username
func (uc *UserUseCase) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return uc.userRepo.GetByUsername(ctx, username)
}

// GetUserByEmail retrieves a user by email
func (uc *UserUseCase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return uc.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

// GetUserByDocument retrieves a user by document, normalizing formatting first
func (uc *UserUseCase) GetUserByDocument(ctx context.Context, document string) (*domain.User, error) {
	return uc.userRepo.GetByDocument(ctx, appValidation.NormalizeDocument(document))
}

// UpdateUser replaces the mutable user fields (full name, email, phone, user type)
func (uc *UserUseCase) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	if err := uc.validateUpdateUserInput(input); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FullName = strings.TrimSpace(input.FullName)
	user.Email = strings.TrimSpace(strings.ToLower(input.Email))
	user.Phone = strings.TrimSpace(input.Phone)
	user.UserType = domain.UserType(input.UserType)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user by ID
func (uc *UserUseCase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return uc.userRepo.Delete(ctx, id)
}
