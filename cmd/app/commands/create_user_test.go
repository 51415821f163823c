package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userDomain "github.com/danilo/sellora-commerce/internal/user/domain"
	userUsecase "github.com/danilo/sellora-commerce/internal/user/usecase"
)

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) CreateUser(ctx context.Context, input userUsecase.CreateUserInput) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) ListUsers(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) GetUserByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) GetUserByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) GetUserByDocument(ctx context.Context, document string) (*userDomain.User, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) UpdateUser(ctx context.Context, id uuid.UUID, input userUsecase.UpdateUserInput) (*userDomain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	userID := uuid.Must(uuid.NewV7())

	input := userUsecase.CreateUserInput{
		FullName: "Jo Doe",
		Username: "jodoe",
		Email:    "jo@example.com",
		Password: "supersecret",
		Phone:    "11999999999",
		UserType: "CUSTOMER",
		Document: "123.456.789-01",
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}
		mockUseCase.On("CreateUser", ctx, input).Return(&userDomain.User{
			ID:       userID,
			Username: "jodoe",
			Email:    "jo@example.com",
		}, nil)

		var out bytes.Buffer
		err := RunCreateUser(ctx, mockUseCase, logger, &out, input, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), userID.String())
		require.Contains(t, out.String(), "jodoe")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}
		mockUseCase.On("CreateUser", ctx, input).Return(&userDomain.User{
			ID:       userID,
			Username: "jodoe",
			Email:    "jo@example.com",
		}, nil)

		var out bytes.Buffer
		err := RunCreateUser(ctx, mockUseCase, logger, &out, input, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"id": "`+userID.String()+`"`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}
		mockUseCase.On("CreateUser", ctx, input).Return(nil, errors.New("boom"))

		var out bytes.Buffer
		err := RunCreateUser(ctx, mockUseCase, logger, &out, input, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create user")
		mockUseCase.AssertExpectations(t)
	})
}
