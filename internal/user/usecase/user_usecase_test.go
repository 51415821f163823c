package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/danilo/sellora-commerce/internal/user/domain"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByDocument(ctx context.Context, document string) (*domain.User, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validCreateUserInput() CreateUserInput {
	return CreateUserInput{
		FullName: "John Doe",
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "SecurePass123!",
		Phone:    "11999998888",
		UserType: "CUSTOMER",
		Document: "123.456.789-01",
		Address: domain.Address{
			Street:  "Main St",
			Number:  "100",
			City:    "Springfield",
			State:   "SP",
			Country: "Brazil",
			ZipCode: "01000-000",
		},
	}
}

func TestNewUserUseCase(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)
	assert.NotNil(t, useCase)
}

func TestUserUseCase_CreateUser_Success(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	ctx := context.Background()
	input := validCreateUserInput()

	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := useCase.CreateUser(ctx, input)

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, input.FullName, user.FullName)
	assert.Equal(t, input.Username, user.Username)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, "12345678901", user.Document) // formatting is stripped
	assert.Equal(t, domain.UserTypeCustomer, user.UserType)
	assert.True(t, user.Status)
	assert.NotEmpty(t, user.Password)
	assert.NotEqual(t, input.Password, user.Password) // Password should be hashed

	userRepo.AssertExpectations(t)
}

func TestUserUseCase_CreateUser_ValidationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *CreateUserInput)
	}{
		{"missing full name", func(i *CreateUserInput) { i.FullName = "" }},
		{"blank full name", func(i *CreateUserInput) { i.FullName = "   " }},
		{"username with whitespace", func(i *CreateUserInput) { i.Username = "john doe" }},
		{"invalid email", func(i *CreateUserInput) { i.Email = "not-an-email" }},
		{"short password", func(i *CreateUserInput) { i.Password = "short" }},
		{"invalid user type", func(i *CreateUserInput) { i.UserType = "MANAGER" }},
		{"short document", func(i *CreateUserInput) { i.Document = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &MockUserRepository{}
			useCase, err := NewUserUseCase(userRepo)
			require.NoError(t, err)

			input := validCreateUserInput()
			tt.mutate(&input)

			user, err := useCase.CreateUser(context.Background(), input)

			assert.Error(t, err)
			assert.Nil(t, user)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
			userRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestUserUseCase_CreateUser_DuplicateUser(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	ctx := context.Background()
	input := validCreateUserInput()

	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrUserAlreadyExists)

	user, err := useCase.CreateUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))

	userRepo.AssertExpectations(t)
}

func TestUserUseCase_GetUserByDocument_NormalizesInput(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	ctx := context.Background()
	expectedUser := &domain.User{ID: uuid.Must(uuid.NewV7()), Document: "12345678901"}

	// The repository must receive the digits-only form regardless of input formatting
	userRepo.On("GetByDocument", ctx, "12345678901").Return(expectedUser, nil)

	user, err := useCase.GetUserByDocument(ctx, "123.456.789-01")

	assert.NoError(t, err)
	assert.Equal(t, expectedUser, user)

	userRepo.AssertExpectations(t)
}

func TestUserUseCase_GetUserByEmail_Lowercases(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	ctx := context.Background()
	expectedUser := &domain.User{ID: uuid.Must(uuid.NewV7()), Email: "john@example.com"}

	userRepo.On("GetByEmail", ctx, "john@example.com").Return(expectedUser, nil)

	user, err := useCase.GetUserByEmail(ctx, " John@Example.com ")

	assert.NoError(t, err)
	assert.Equal(t, expectedUser, user)

	userRepo.AssertExpectations(t)
}

func TestUserUseCase_UpdateUser_Success(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	existing := &domain.User{
		ID:       id,
		FullName: "John Doe",
		Username: "johndoe",
		Email:    "john@example.com",
		Phone:    "11999998888",
		UserType: domain.UserTypeCustomer,
		Document: "12345678901",
	}

	userRepo.On("GetByID", ctx, id).Return(existing, nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	input := UpdateUserInput{
		FullName: "Johnny Doe",
		Email:    "johnny@example.com",
		Phone:    "11888887777",
		UserType: "ADMIN",
	}

	user, err := useCase.UpdateUser(ctx, id, input)

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Johnny Doe", user.FullName)
	assert.Equal(t, "johnny@example.com", user.Email)
	assert.Equal(t, "11888887777", user.Phone)
	assert.Equal(t, domain.UserTypeAdmin, user.UserType)
	// Identity fields stay untouched
	assert.Equal(t, "johndoe", user.Username)
	assert.Equal(t, "12345678901", user.Document)

	userRepo.AssertExpectations(t)
}

func TestUserUseCase_UpdateUser_NotFound(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	userRepo.On("GetByID", ctx, id).Return(nil, domain.ErrUserNotFound)

	input := UpdateUserInput{
		FullName: "Johnny Doe",
		Email:    "johnny@example.com",
		Phone:    "11888887777",
		UserType: "ADMIN",
	}

	user, err := useCase.UpdateUser(ctx, id, input)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	userRepo.AssertNotCalled(t, "Update")

	userRepo.AssertExpectations(t)
}

func TestUserUseCase_DeleteUser(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	userRepo.On("Delete", ctx, id).Return(nil)

	err = useCase.DeleteUser(ctx, id)

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_ListUsers(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	ctx := context.Background()
	expected := []*domain.User{
		{ID: uuid.Must(uuid.NewV7()), Username: "user1"},
		{ID: uuid.Must(uuid.NewV7()), Username: "user2"},
	}

	userRepo.On("List", ctx, 0, 50).Return(expected, nil)

	users, err := useCase.ListUsers(ctx, 0, 50)

	assert.NoError(t, err)
	assert.Equal(t, expected, users)
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_ListUsers_Error(t *testing.T) {
	userRepo := &MockUserRepository{}

	useCase, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	ctx := context.Background()
	listErr := errors.New("database error")

	userRepo.On("List", ctx, 0, 50).Return(nil, listErr)

	users, err := useCase.ListUsers(ctx, 0, 50)

	assert.Error(t, err)
	assert.Nil(t, users)
	userRepo.AssertExpectations(t)
}
